package docsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Result is one documentation hit returned by the search backend.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Client queries an Algolia documentation index. A zero-credential
// client is valid and resolves every query to an empty result set, so
// a documentation-search outage or missing configuration never fails
// the chat path.
type Client struct {
	appID      string
	apiKey     string
	indexName  string
	baseURL    string // overrides the Algolia DSN host, used in tests
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate search endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout bounds each search call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New builds a search client. appID and apiKey may be empty.
func New(appID, apiKey, indexName string, opts ...Option) *Client {
	c := &Client{
		appID:      appID,
		apiKey:     apiKey,
		indexName:  indexName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.New(log.Writer(), "[SEARCH] ", log.LstdFlags),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool { return c.appID != "" && c.apiKey != "" }

// queryRequest is the Algolia single-index query body.
type queryRequest struct {
	Query       string `json:"query"`
	HitsPerPage int    `json:"hitsPerPage"`
}

// Search runs a keyword query and returns at most maxResults hits.
// Failures degrade to an empty result set: callers must treat "search
// unavailable" identically to "no results found".
func (c *Client) Search(ctx context.Context, query string, maxResults int) []Result {
	if !c.Enabled() {
		return nil
	}

	body, _ := json.Marshal(queryRequest{Query: query, HitsPerPage: maxResults})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL(), bytes.NewReader(body))
	if err != nil {
		c.logger.Printf("building search request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-Application-Id", c.appID)
	req.Header.Set("X-Algolia-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("search backend returned status %d", resp.StatusCode)
		return nil
	}

	var raw struct {
		Hits []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logger.Printf("parsing search response: %v", err)
		return nil
	}

	var out []Result
	for i, hit := range raw.Hits {
		if i >= maxResults {
			break
		}
		out = append(out, Result{
			Title:   hit.Title,
			URL:     hit.URL,
			Content: hit.Content,
			Score:   rankScore(i),
		})
	}
	return out
}

func (c *Client) queryURL() string {
	if c.baseURL != "" {
		return fmt.Sprintf("%s/1/indexes/%s/query", c.baseURL, c.indexName)
	}
	return fmt.Sprintf("https://%s-dsn.algolia.net/1/indexes/%s/query", c.appID, c.indexName)
}

// rankScore assigns a placeholder relevance score that decreases
// monotonically with result rank. Algolia returns hits ranked but does
// not expose a usable scalar score on this endpoint.
func rankScore(rank int) float64 {
	return 1.0 / float64(rank+1)
}
