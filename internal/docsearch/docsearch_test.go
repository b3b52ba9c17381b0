package docsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func algoliaStub(t *testing.T, hits []map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Algolia-Application-Id") == "" || r.Header.Get("X-Algolia-API-Key") == "" {
			t.Error("missing Algolia auth headers")
		}
		var body struct {
			Query       string `json:"query"`
			HitsPerPage int    `json:"hitsPerPage"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding query body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"hits": hits})
	}))
}

func TestSearchUnconfiguredReturnsEmpty(t *testing.T) {
	c := New("", "", "iqm_docs")
	if got := c.Search(context.Background(), "campaign", 5); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestSearchNormalizesAndCapsResults(t *testing.T) {
	srv := algoliaStub(t, []map[string]string{
		{"title": "Campaign API", "url": "/guidelines/campaign-api", "content": "How to create campaigns"},
		{"title": "Budget Guide", "url": "/guidelines/campaign-api#budget", "content": "Budget fields"},
		{"title": "Reports", "url": "/guidelines/reports-api", "content": "Reporting"},
	})
	defer srv.Close()

	c := New("app", "key", "iqm_docs", WithBaseURL(srv.URL))
	got := c.Search(context.Background(), "campaign", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Title != "Campaign API" || got[0].URL != "/guidelines/campaign-api" {
		t.Fatalf("unexpected first hit: %+v", got[0])
	}
	if got[0].Score <= got[1].Score {
		t.Fatalf("scores must decrease with rank: %f then %f", got[0].Score, got[1].Score)
	}
}

func TestSearchSwallowsBackendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New("app", "key", "iqm_docs", WithBaseURL(srv.URL))
	if got := c.Search(context.Background(), "campaign", 5); len(got) != 0 {
		t.Fatalf("expected no results on backend error, got %d", len(got))
	}
}

func TestSearchSwallowsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New("app", "key", "iqm_docs", WithBaseURL(srv.URL))
	if got := c.Search(context.Background(), "campaign", 5); len(got) != 0 {
		t.Fatalf("expected no results on malformed response, got %d", len(got))
	}
}

func TestSearchSwallowsConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New("app", "key", "iqm_docs", WithBaseURL(srv.URL))
	if got := c.Search(context.Background(), "campaign", 5); len(got) != 0 {
		t.Fatalf("expected no results on connection failure, got %d", len(got))
	}
}
