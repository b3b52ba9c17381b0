package assistant

import (
	"context"
	"fmt"
	"strings"
)

// ErrUnknownTool indicates an invocation of a tool that was never registered.
var ErrUnknownTool = fmt.Errorf("unknown tool")

// ToolFunc executes a tool against a JSON argument map.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool is a named callable the orchestration layer (and, nominally, the
// model) can invoke with JSON arguments.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]string // parameter name -> type
	Fn          ToolFunc
}

// Registry maps tool names to tools. The set is fixed before traffic
// starts; concurrent registration during traffic is not supported.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool of the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name] = t
}

// Invoke dispatches to the named tool. Dispatch is synchronous and
// independent across invocations.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Fn(ctx, args)
}

// Names returns the registered tool names, unordered.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.tools))
	for name := range r.tools {
		out = append(out, name)
	}
	return out
}

func (a *Assistant) registerBuiltinTools() {
	a.tools.Register(Tool{
		Name:        "search_docs",
		Description: "Search the IQM documentation",
		Parameters:  map[string]string{"query": "string", "max_results": "integer"},
		Fn:          a.toolSearchDocs,
	})
	a.tools.Register(Tool{
		Name:        "get_api_info",
		Description: "Get details about an API endpoint",
		Parameters:  map[string]string{"endpoint": "string"},
		Fn:          a.toolGetAPIInfo,
	})
	a.tools.Register(Tool{
		Name:        "list_endpoints",
		Description: "List documented API endpoints, optionally by category",
		Parameters:  map[string]string{"category": "string"},
		Fn:          a.toolListEndpoints,
	})
	a.tools.Register(Tool{
		Name:        "get_example_code",
		Description: "Get an example invocation for an API endpoint",
		Parameters:  map[string]string{"endpoint": "string", "language": "string"},
		Fn:          a.toolGetExampleCode,
	})
}

func (a *Assistant) toolSearchDocs(ctx context.Context, args map[string]any) (any, error) {
	query := argString(args, "query", "")
	maxResults := argInt(args, "max_results", 5)

	results := a.search.Search(ctx, query, maxResults)
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		out = append(out, map[string]any{
			"title":   r.Title,
			"url":     r.URL,
			"snippet": truncate(r.Content, 200),
		})
	}
	return out, nil
}

// toolGetAPIInfo treats a path-like argument (contains a slash) as a
// catalog lookup and anything else as a free-text endpoint search.
func (a *Assistant) toolGetAPIInfo(ctx context.Context, args map[string]any) (any, error) {
	endpoint := argString(args, "endpoint", "")
	method := argString(args, "method", "")

	if !strings.Contains(endpoint, "/") {
		matches := a.catalog.Search(endpoint)
		out := make([]map[string]any, 0, len(matches))
		for _, m := range matches {
			out = append(out, map[string]any{
				"path":    m.Path,
				"method":  m.Method,
				"summary": m.Summary,
				"docPage": m.DocPage,
			})
		}
		return out, nil
	}

	return a.catalog.EndpointJSON(endpoint, method), nil
}

func (a *Assistant) toolListEndpoints(ctx context.Context, args map[string]any) (any, error) {
	category := argString(args, "category", "")

	if category != "" {
		endpoints := a.catalog.ByCategory(category)
		out := make([]map[string]any, 0, len(endpoints))
		for _, e := range endpoints {
			out = append(out, map[string]any{
				"path":    e.Path,
				"method":  e.Method,
				"summary": e.Summary,
			})
		}
		return map[string]any{category: out}, nil
	}

	result := make(map[string]any)
	for _, cat := range a.catalog.Categories() {
		var paths []string
		for _, e := range a.catalog.ByCategory(cat) {
			paths = append(paths, e.Path)
		}
		result[cat] = paths
	}
	return result, nil
}

func (a *Assistant) toolGetExampleCode(ctx context.Context, args map[string]any) (any, error) {
	endpoint := argString(args, "endpoint", "")
	language := argString(args, "language", "curl")

	if language == "curl" {
		return map[string]any{
			"example": "curl -X POST '" + endpoint + "' -H 'Authorization: Bearer TOKEN'",
		}, nil
	}
	return map[string]any{"error": "Language not supported"}, nil
}

func argString(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

func argInt(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64: // JSON numbers decode as float64
		return int(v)
	case int:
		return v
	}
	return def
}
