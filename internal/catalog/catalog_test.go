package catalog

import (
	"strings"
	"testing"
)

func TestLookupExactForEveryEntry(t *testing.T) {
	c := New()
	if c.Len() == 0 {
		t.Fatal("catalog is empty")
	}
	for _, e := range endpointTable() {
		got, ok := c.Lookup(e.Path, e.Method)
		if !ok {
			t.Fatalf("Lookup(%q, %q) found nothing", e.Path, e.Method)
		}
		if got.Path != e.Path || got.Method != e.Method {
			t.Fatalf("Lookup(%q, %q) = (%q, %q)", e.Path, e.Method, got.Path, got.Method)
		}
	}
}

func TestLookupFallsBackToPathOnly(t *testing.T) {
	c := New()
	got, ok := c.Lookup("/api/v3/campaign/budget", "")
	if !ok {
		t.Fatal("path-only lookup found nothing")
	}
	if got.Path != "/api/v3/campaign/budget" {
		t.Fatalf("got %q", got.Path)
	}
}

func TestLookupFallsBackToSubstring(t *testing.T) {
	c := New()

	// partial path contained in a stored path
	got, ok := c.Lookup("ra/report/execute", "")
	if !ok {
		t.Fatal("partial lookup found nothing")
	}
	if !strings.Contains(got.Path, "ra/report/execute") {
		t.Fatalf("got unrelated endpoint %q", got.Path)
	}

	// prefixed path containing a stored path
	got, ok = c.Lookup("https://api.iqm.com/api/v3/campaign/status", "")
	if !ok {
		t.Fatal("prefixed lookup found nothing")
	}
	if !strings.Contains("https://api.iqm.com/api/v3/campaign/status", got.Path) {
		t.Fatalf("got unrelated endpoint %q", got.Path)
	}
}

func TestLookupMiss(t *testing.T) {
	c := New()
	if _, ok := c.Lookup("/nope/nothing/here", ""); ok {
		t.Fatal("expected no match")
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := New()

	lower := c.Search("campaign")
	upper := c.Search("CAMPAIGN")
	if len(lower) == 0 {
		t.Fatal("no results for campaign")
	}
	if len(lower) != len(upper) {
		t.Fatalf("case sensitivity: %d vs %d results", len(lower), len(upper))
	}

	// Every registered endpoint mentioning "campaign" anywhere must appear.
	want := 0
	for _, e := range endpointTable() {
		hay := strings.ToLower(e.Path + " " + e.Summary + " " + e.Description + " " + strings.Join(e.Tags, " "))
		if strings.Contains(hay, "campaign") {
			want++
		}
	}
	if len(lower) != want {
		t.Fatalf("expected %d results, got %d", want, len(lower))
	}
}

func TestByCategoryPreservesRegistrationOrder(t *testing.T) {
	c := New()
	campaigns := c.ByCategory("campaigns")
	if len(campaigns) != 5 {
		t.Fatalf("expected 5 campaign endpoints, got %d", len(campaigns))
	}
	if campaigns[0].Method != "POST" || campaigns[0].Path != "/api/v3/campaign" {
		t.Fatalf("unexpected first campaign endpoint: %s %s", campaigns[0].Method, campaigns[0].Path)
	}
	if got := c.ByCategory("no-such-category"); len(got) != 0 {
		t.Fatalf("expected empty slice, got %d entries", len(got))
	}
}

func TestCategories(t *testing.T) {
	c := New()
	cats := c.Categories()
	want := []string{"campaigns", "reports", "audiences", "creatives", "conversions", "inventory", "dashboard"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %v", len(want), cats)
	}
	for i, w := range want {
		if cats[i] != w {
			t.Fatalf("category %d: expected %q, got %q", i, w, cats[i])
		}
	}
}

func TestEndpointJSON(t *testing.T) {
	c := New()

	got := c.EndpointJSON("/api/v3/campaign", "POST")
	if got["path"] != "/api/v3/campaign" {
		t.Fatalf("unexpected path: %v", got["path"])
	}
	if got["requiresAuth"] != true {
		t.Fatal("expected requiresAuth true")
	}

	miss := c.EndpointJSON("/definitely/not/registered", "")
	if miss["error"] != "Endpoint not found" {
		t.Fatalf("expected error map, got %v", miss)
	}
	if miss["path"] != "/definitely/not/registered" {
		t.Fatalf("error map should echo the path, got %v", miss["path"])
	}
}
