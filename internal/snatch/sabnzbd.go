package snatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SABnzbdClient submits NZBs to a SABnzbd instance.
type SABnzbdClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewSABnzbdClient creates a new SABnzbd client.
func NewSABnzbdClient(baseURL, apiKey string, log *slog.Logger) *SABnzbdClient {
	if log == nil {
		log = slog.Default()
	}
	return &SABnzbdClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		log:     log.With("component", "sabnzbd"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Add sends an NZB URL to SABnzbd and returns the assigned download ID.
func (c *SABnzbdClient) Add(ctx context.Context, nzbURL, category string) (string, error) {
	c.log.Debug("adding nzb", "category", category)

	params := url.Values{
		"apikey": {c.apiKey},
		"output": {"json"},
		"mode":   {"addurl"},
		"name":   {nzbURL},
		"cat":    {category},
	}

	var resp addResponse
	if err := c.doRequest(ctx, "addurl", params, &resp); err != nil {
		return "", err
	}

	if !resp.Status {
		if isAPIKeyError(resp.Error) {
			return "", ErrInvalidAPIKey
		}
		return "", fmt.Errorf("sabnzbd add failed: %s", resp.Error)
	}

	if len(resp.NzoIDs) == 0 {
		return "", fmt.Errorf("sabnzbd returned no nzo_id")
	}

	c.log.Debug("nzb added", "nzo_id", resp.NzoIDs[0])
	return resp.NzoIDs[0], nil
}

// doRequest performs an HTTP request to the SABnzbd API.
func (c *SABnzbdClient) doRequest(ctx context.Context, mode string, params url.Values, result any) error {
	start := time.Now()
	reqURL := c.baseURL + "/api?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("api request failed", "mode", mode, "error", err)
		return ErrClientUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("api unexpected status", "mode", mode, "status", resp.StatusCode)
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.log.Debug("api request complete", "mode", mode, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

type addResponse struct {
	Status bool     `json:"status"`
	NzoIDs []string `json:"nzo_ids"`
	Error  string   `json:"error"`
}

// isAPIKeyError checks if the error message indicates an invalid API key.
func isAPIKeyError(errMsg string) bool {
	lower := strings.ToLower(errMsg)
	return strings.Contains(lower, "api key") || strings.Contains(lower, "apikey")
}
