package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const defaultBaseURL = "https://api4.thetvdb.com/v4"

// Sentinel errors for TVDB API responses.
var (
	ErrNotFound     = errors.New("series not found")
	ErrUnauthorized = errors.New("unauthorized: invalid or expired API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a TVDB API v4 client with JWT authentication.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	// JWT token management (thread-safe)
	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tvdb")
	}
}

// New creates a new TVDB API v4 client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// login authenticates with TVDB and stores the JWT token.
func (c *Client) login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{"apikey": c.apiKey})
	if err != nil {
		return fmt.Errorf("marshal login body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: %s", resp.Status)
	}

	var loginResp loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if loginResp.Data.Token == "" {
		return errors.New("login response missing token")
	}

	c.mu.Lock()
	c.token = loginResp.Data.Token
	c.mu.Unlock()

	if c.log != nil {
		c.log.Debug("authenticated with TVDB")
	}
	return nil
}

// ensureToken ensures we have a valid JWT token, logging in if necessary.
func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.RLock()
	hasToken := c.token != ""
	c.mu.RUnlock()

	if !hasToken {
		return c.login(ctx)
	}
	return nil
}

// doRequest performs an authenticated GET, refreshing the token once on 401.
func (c *Client) doRequest(ctx context.Context, endpoint string) (*http.Response, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if c.log != nil {
			c.log.Debug("token expired, refreshing")
		}

		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()

		if err := c.login(ctx); err != nil {
			return nil, err
		}
		return c.get(ctx, endpoint)
	}

	return resp, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// GetEpisodes fetches all episodes for a series in the given language,
// handling pagination automatically. Pass "" for the default (English)
// episode ordering.
func (c *Client) GetEpisodes(ctx context.Context, seriesID int, language string) ([]Episode, error) {
	start := time.Now()

	base := fmt.Sprintf("/series/%d/episodes/default", seriesID)
	if language != "" {
		base += "/" + language
	}

	var all []Episode
	page := 0
	for {
		resp, err := c.doRequest(ctx, fmt.Sprintf("%s?page=%d", base, page))
		if err != nil {
			return nil, err
		}

		if err := c.checkResponse(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}

		var episodesResp episodesResponse
		if err := json.NewDecoder(resp.Body).Decode(&episodesResp); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("decode episodes response: %w", err)
		}
		resp.Body.Close()

		for _, ep := range episodesResp.Data.Episodes {
			var airDate time.Time
			if ep.Aired != "" {
				airDate, _ = time.Parse("2006-01-02", ep.Aired)
			}
			all = append(all, Episode{
				ID:      ep.ID,
				Season:  ep.SeasonNumber,
				Episode: ep.Number,
				Name:    ep.Name,
				AirDate: airDate,
			})
		}

		if episodesResp.Links.Next == "" {
			break
		}
		page++

		// Safety limit to prevent infinite loops
		if page > 100 {
			if c.log != nil {
				c.log.Warn("hit pagination limit", "series_id", seriesID, "pages", page)
			}
			break
		}
	}

	if c.log != nil {
		c.log.Debug("fetched episodes", "series_id", seriesID, "count", len(all), "duration_ms", time.Since(start).Milliseconds())
	}
	return all, nil
}

// checkResponse maps HTTP errors to sentinel errors.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("TVDB API error: %s", resp.Status)
	}
}
