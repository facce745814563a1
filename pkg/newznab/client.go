// Package newznab implements the Newznab usenet indexer API protocol.
package newznab

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrAuth indicates the indexer rejected the API key. Callers treat this as
// a per-indexer condition, not a run-level failure.
var ErrAuth = errors.New("indexer authentication failed")

// TV search categories per the Newznab category spec.
var tvCategories = []int{5000, 5010, 5020, 5030, 5040, 5045, 5050, 5070}

// Client is a Newznab API client for a single indexer.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Release represents a search result from a Newznab indexer.
type Release struct {
	Title       string
	GUID        string
	DownloadURL string
	Size        int64
	PublishDate time.Time
	Indexer     string
}

// NewClient creates a new Newznab client.
func NewClient(name, baseURL, apiKey string, log *slog.Logger) *Client {
	var clientLog *slog.Logger
	if log != nil {
		clientLog = log.With("component", "newznab", "indexer", name)
	}
	return &Client{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: clientLog,
	}
}

// Name returns the indexer name.
func (c *Client) Name() string {
	return c.name
}

// Newznab RSS response structures
type rssResponse struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title     string        `xml:"title"`
	GUID      string        `xml:"guid"`
	Link      string        `xml:"link"`
	Size      int64         `xml:"size"`
	PubDate   string        `xml:"pubDate"`
	Enclosure rssEnclosure  `xml:"enclosure"`
	Attrs     []newznabAttr `xml:"http://www.newznab.com/DTD/2010/feeds/attributes/ attr"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
}

type newznabAttr struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// FindPropers searches the indexer's TV categories for PROPER and REPACK
// releases published since the given time. Returns ErrAuth when the indexer
// rejects the API key.
func (c *Client) FindPropers(ctx context.Context, since time.Time) ([]Release, error) {
	var all []Release
	seen := make(map[string]bool)

	for _, term := range []string{"PROPER", "REPACK"} {
		releases, err := c.search(ctx, term, tvCategories)
		if err != nil {
			return nil, err
		}
		for _, rel := range releases {
			if rel.PublishDate.Before(since) {
				continue
			}
			if seen[rel.GUID] {
				continue
			}
			seen[rel.GUID] = true
			all = append(all, rel)
		}
	}

	if c.log != nil {
		c.log.Debug("proper search complete", "since", since, "results", len(all))
	}
	return all, nil
}

// search queries the indexer for releases.
func (c *Client) search(ctx context.Context, query string, categories []int) ([]Release, error) {
	start := time.Now()

	reqURL, err := url.Parse(c.baseURL + "/api")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", "search")
	if query != "" {
		params.Set("q", query)
	}
	if len(categories) > 0 {
		cats := make([]string, len(categories))
		for i, cat := range categories {
			cats[i] = strconv.Itoa(cat)
		}
		params.Set("cat", strings.Join(cats, ","))
	}
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%s: %w", c.name, ErrAuth)
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var rss rssResponse
	if err := xml.NewDecoder(resp.Body).Decode(&rss); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	releases := make([]Release, 0, len(rss.Channel.Items))
	for _, item := range rss.Channel.Items {
		rel := Release{
			Title:       item.Title,
			GUID:        item.GUID,
			DownloadURL: item.Link,
			Indexer:     c.name,
		}

		// Size from enclosure or item
		if item.Enclosure.Length > 0 {
			rel.Size = item.Enclosure.Length
		} else if item.Size > 0 {
			rel.Size = item.Size
		}

		// Download URL from enclosure if link is empty
		if rel.DownloadURL == "" && item.Enclosure.URL != "" {
			rel.DownloadURL = item.Enclosure.URL
		}

		// Parse publish date (try multiple formats)
		if item.PubDate != "" {
			for _, format := range []string{
				time.RFC1123Z,
				"Mon, 02 Jan 2006 15:04:05 MST",
				time.RFC1123,
			} {
				if t, err := time.Parse(format, item.PubDate); err == nil {
					rel.PublishDate = t
					break
				}
			}
		}

		// Get size from newznab:attr if not set
		if rel.Size == 0 {
			for _, attr := range item.Attrs {
				if attr.Name == "size" {
					rel.Size, _ = strconv.ParseInt(attr.Value, 10, 64)
					break
				}
			}
		}

		releases = append(releases, rel)
	}

	if c.log != nil {
		c.log.Debug("search complete", "query", query, "results", len(releases), "duration_ms", time.Since(start).Milliseconds())
	}

	return releases, nil
}
