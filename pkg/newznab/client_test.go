package newznab

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssFeed(items string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:newznab="http://www.newznab.com/DTD/2010/feeds/attributes/">
<channel>` + items + `</channel></rss>`
}

func rssItemXML(title, guid, date string) string {
	return fmt.Sprintf(`<item>
		<title>%s</title>
		<guid>%s</guid>
		<link>https://indexer.example/get/%s</link>
		<pubDate>%s</pubDate>
		<enclosure url="https://indexer.example/get/%s" length="1000"/>
	</item>`, title, guid, guid, date, guid)
}

func TestClient_FindPropers(t *testing.T) {
	recent := time.Now().Add(-6 * time.Hour).Format(time.RFC1123Z)
	stale := time.Now().Add(-96 * time.Hour).Format(time.RFC1123Z)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.URL.Query().Get("apikey"))
		require.Equal(t, "search", r.URL.Query().Get("t"))

		switch r.URL.Query().Get("q") {
		case "PROPER":
			fmt.Fprint(w, rssFeed(
				rssItemXML("Show.Name.S01E02.PROPER.720p.HDTV.x264-GRP", "guid-1", recent)+
					rssItemXML("Old.Show.S05E01.PROPER.720p.HDTV-GRP", "guid-2", stale)))
		case "REPACK":
			fmt.Fprint(w, rssFeed(
				rssItemXML("Other.Show.S02E03.REPACK.1080p.WEB-DL-GRP", "guid-3", recent)+
					// Same GUID as the PROPER result: must be deduped.
					rssItemXML("Show.Name.S01E02.PROPER.720p.HDTV.x264-GRP", "guid-1", recent)))
		default:
			t.Errorf("unexpected query %q", r.URL.Query().Get("q"))
		}
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, "secret", nil)
	releases, err := c.FindPropers(context.Background(), time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	require.Len(t, releases, 2, "stale release filtered, duplicate GUID deduped")
	assert.Equal(t, "Show.Name.S01E02.PROPER.720p.HDTV.x264-GRP", releases[0].Title)
	assert.Equal(t, "Other.Show.S02E03.REPACK.1080p.WEB-DL-GRP", releases[1].Title)
	assert.Equal(t, "test", releases[0].Indexer)
	assert.NotEmpty(t, releases[0].DownloadURL)
}

func TestClient_FindPropers_AuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, "wrong", nil)
	_, err := c.FindPropers(context.Background(), time.Now().Add(-48*time.Hour))
	assert.ErrorIs(t, err, ErrAuth)
}

func TestClient_FindPropers_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, "secret", nil)
	_, err := c.FindPropers(context.Background(), time.Now().Add(-48*time.Hour))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuth)
}
