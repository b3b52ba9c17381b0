package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iqm-labs/docassist/internal/docsearch"
)

const defaultSearchResults = 5

// SearchHandler exposes documentation search directly.
type SearchHandler struct {
	Search *docsearch.Client
}

func (h *SearchHandler) Register(e *echo.Echo) {
	e.POST("/v1/search", h.search)
	e.POST("/api/search", h.search)
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

func (h *SearchHandler) search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultSearchResults
	}

	results := h.Search.Search(c.Request().Context(), req.Query, req.MaxResults)

	out := make([]searchResult, 0, len(results))
	for _, r := range results {
		out = append(out, searchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
			Score:   r.Score,
		})
	}
	return c.JSON(http.StatusOK, out)
}
