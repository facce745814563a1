package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/properd/internal/migrations"
	"github.com/vmunix/properd/pkg/tvdb"
)

func setupCache(t *testing.T) *Cache {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Apply(db))
	return NewCache(db)
}

// fakeTVDB serves a login endpoint and a fixed episode list, counting how
// many episode fetches hit the API.
func fakeTVDB(t *testing.T, episodeCalls *atomic.Int32, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "success", "data": map[string]string{"token": "tok"},
			})
			return
		}
		episodeCalls.Add(1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"episodes": []map[string]any{
					{"id": 10, "seasonNumber": 2, "number": 7, "name": "The One", "aired": "2010-11-27"},
					{"id": 11, "seasonNumber": 2, "number": 8, "name": "Unaired", "aired": ""},
				},
			},
			"links": map[string]any{"next": ""},
		})
	}))
}

func TestTVDBLookup_EpisodeForAirDate(t *testing.T) {
	var calls atomic.Int32
	srv := fakeTVDB(t, &calls, http.StatusOK)
	defer srv.Close()

	client := tvdb.New("key", tvdb.WithBaseURL(srv.URL))
	lookup := NewTVDBLookup(client, setupCache(t), nil)

	ref, err := lookup.EpisodeForAirDate(context.Background(), 81189, "",
		time.Date(2010, 11, 27, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, EpisodeRef{Season: 2, Episode: 7}, ref)

	// Second resolution for the same series must come from cache.
	ref, err = lookup.EpisodeForAirDate(context.Background(), 81189, "",
		time.Date(2010, 11, 27, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, EpisodeRef{Season: 2, Episode: 7}, ref)
	assert.Equal(t, int32(1), calls.Load(), "episode list should be cached")
}

func TestTVDBLookup_NoEpisodeThatDay(t *testing.T) {
	var calls atomic.Int32
	srv := fakeTVDB(t, &calls, http.StatusOK)
	defer srv.Close()

	client := tvdb.New("key", tvdb.WithBaseURL(srv.URL))
	lookup := NewTVDBLookup(client, setupCache(t), nil)

	_, err := lookup.EpisodeForAirDate(context.Background(), 81189, "",
		time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
}

func TestTVDBLookup_SeriesUnknown(t *testing.T) {
	var calls atomic.Int32
	srv := fakeTVDB(t, &calls, http.StatusNotFound)
	defer srv.Close()

	client := tvdb.New("key", tvdb.WithBaseURL(srv.URL))
	lookup := NewTVDBLookup(client, setupCache(t), nil)

	_, err := lookup.EpisodeForAirDate(context.Background(), 4242, "",
		time.Date(2010, 11, 27, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
}

func TestTVDBLookup_ServiceFailure(t *testing.T) {
	var calls atomic.Int32
	srv := fakeTVDB(t, &calls, http.StatusInternalServerError)
	defer srv.Close()

	client := tvdb.New("key", tvdb.WithBaseURL(srv.URL))
	lookup := NewTVDBLookup(client, setupCache(t), nil)

	_, err := lookup.EpisodeForAirDate(context.Background(), 81189, "",
		time.Date(2010, 11, 27, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEpisodeNotFound)
}
