package moddb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/violet4/VSModPuller/config"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client handles communication with the Vintage Story ModDB API.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a new ModDB API client using the provided configuration.
func NewClient(cfg config.Config) (*Client, error) {
	if cfg.UserAgent == "" {
		// Should be handled by LoadConfig default, but double-check
		return nil, fmt.Errorf("USERAGENT is not configured")
	}

	return &Client{
		BaseURL:   cfg.ModDBBaseURL,
		UserAgent: cfg.UserAgent,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// getCollection fetches a list endpoint and extracts the raw JSON array stored
// under key in the response object.
func (c *Client) getCollection(path, key string) (json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api request failed: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode json response: %w", err)
	}

	raw, ok := payload[key]
	if !ok {
		return nil, fmt.Errorf("response from %s has no %q key", path, key)
	}
	return raw, nil
}

// FetchCollection returns the raw JSON array for a list endpoint, going
// through the on-disk cache: the endpoint is only hit when cacheFile does not
// exist yet, and the cache is only written after a successful decode. The
// return value is always re-read from the cache file, so a file that was
// tampered with wins over whatever the API said.
func (c *Client) FetchCollection(path, cacheFile, key string) (json.RawMessage, error) {
	if _, err := os.Stat(cacheFile); errors.Is(err, os.ErrNotExist) {
		logger := zap.S().With(zap.String("url", c.BaseURL+path), zap.String("cache", cacheFile))
		logger.Info("Cache miss, downloading collection")

		raw, err := c.getCollection(path, key)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(cacheFile, raw, 0644); err != nil {
			return nil, fmt.Errorf("failed to write cache file '%s': %w", cacheFile, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to check cache file '%s': %w", cacheFile, err)
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file '%s': %w", cacheFile, err)
	}
	return json.RawMessage(data), nil
}

// FetchMods returns the complete mods collection, cached at cacheFile.
func (c *Client) FetchMods(cacheFile string) ([]Mod, error) {
	raw, err := c.FetchCollection("/api/mods", cacheFile, "mods")
	if err != nil {
		return nil, err
	}
	var mods []Mod
	if err := json.Unmarshal(raw, &mods); err != nil {
		return nil, fmt.Errorf("failed to parse cached mods collection: %w", err)
	}
	return mods, nil
}

// FetchAuthors returns the complete authors collection, cached at cacheFile.
func (c *Client) FetchAuthors(cacheFile string) ([]Author, error) {
	raw, err := c.FetchCollection("/api/authors", cacheFile, "authors")
	if err != nil {
		return nil, err
	}
	var authors []Author
	if err := json.Unmarshal(raw, &authors); err != nil {
		return nil, fmt.Errorf("failed to parse cached authors collection: %w", err)
	}
	return authors, nil
}
