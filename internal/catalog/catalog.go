package catalog

import "strings"

// Endpoint describes a single documented API endpoint.
type Endpoint struct {
	Path         string         `json:"path"`
	Method       string         `json:"method"`
	Summary      string         `json:"summary"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	DocPage      string         `json:"docPage"`
	Tags         []string       `json:"tags"`
	RequestBody  map[string]any `json:"requestBody"`
	ResponseBody map[string]any `json:"responseBody"`
	Parameters   []any          `json:"parameters"`
	RequiresAuth bool           `json:"requiresAuth"`
}

// Key returns the registry key for the endpoint, METHOD:path.
func (e Endpoint) Key() string { return e.Method + ":" + e.Path }

// Catalog is a read-only index of API endpoint metadata. It is built
// once at startup and safe for concurrent use without locking.
type Catalog struct {
	endpoints map[string]Endpoint
	byCat     map[string][]string // category -> keys, registration order
	cats      []string            // categories, registration order
}

// New builds the catalog from the embedded endpoint table.
func New() *Catalog {
	c := &Catalog{
		endpoints: make(map[string]Endpoint),
		byCat:     make(map[string][]string),
	}
	for _, e := range endpointTable() {
		c.add(e)
	}
	return c
}

func (c *Catalog) add(e Endpoint) {
	key := e.Key()
	c.endpoints[key] = e
	if _, seen := c.byCat[e.Category]; !seen {
		c.cats = append(c.cats, e.Category)
	}
	c.byCat[e.Category] = append(c.byCat[e.Category], key)
}

// Lookup resolves a path (and optional method) to endpoint metadata.
// Resolution is deliberately permissive: exact (method,path) first, then
// any entry with the same stored path, then substring containment in
// either direction so callers may pass partial or prefixed paths.
func (c *Catalog) Lookup(path, method string) (Endpoint, bool) {
	if method != "" {
		if e, ok := c.endpoints[method+":"+path]; ok {
			return e, true
		}
	}
	for _, e := range c.endpoints {
		if e.Path == path {
			return e, true
		}
	}
	for _, e := range c.endpoints {
		if strings.Contains(path, e.Path) || strings.Contains(e.Path, path) {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Search returns every endpoint whose path, summary, description or tags
// contain the keyword, case-insensitively. Result order follows map
// iteration and is not stable.
func (c *Catalog) Search(keyword string) []Endpoint {
	needle := strings.ToLower(keyword)
	var out []Endpoint
	for _, e := range c.endpoints {
		haystack := strings.ToLower(e.Path + " " + e.Summary + " " + e.Description + " " + strings.Join(e.Tags, " "))
		if strings.Contains(haystack, needle) {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns the endpoints registered under category, in
// registration order.
func (c *Catalog) ByCategory(category string) []Endpoint {
	keys := c.byCat[category]
	out := make([]Endpoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.endpoints[k])
	}
	return out
}

// Categories returns all known categories in registration order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.cats))
	copy(out, c.cats)
	return out
}

// Len returns the number of registered endpoints.
func (c *Catalog) Len() int { return len(c.endpoints) }

// EndpointJSON returns lookup results in the wire shape tools hand to
// the model: the full metadata map, or an error map when nothing matched.
func (c *Catalog) EndpointJSON(path, method string) map[string]any {
	e, ok := c.Lookup(path, method)
	if !ok {
		return map[string]any{"error": "Endpoint not found", "path": path}
	}
	return map[string]any{
		"path":         e.Path,
		"method":       e.Method,
		"summary":      e.Summary,
		"description":  e.Description,
		"category":     e.Category,
		"docPage":      e.DocPage,
		"tags":         e.Tags,
		"requestBody":  e.RequestBody,
		"responseBody": e.ResponseBody,
		"parameters":   e.Parameters,
		"requiresAuth": e.RequiresAuth,
	}
}
