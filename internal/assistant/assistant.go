package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/iqm-labs/docassist/internal/catalog"
	"github.com/iqm-labs/docassist/internal/docsearch"
	"github.com/iqm-labs/docassist/internal/llm"
)

// snippetLimit is the hard character cap applied to each retrieved
// documentation snippet before it enters the prompt.
const snippetLimit = 500

// ragResults is how many documentation hits are retrieved per chat turn.
const ragResults = 3

// systemPrompt grounds the model in the actual documentation layout.
const systemPrompt = `You are an AI assistant for IQM's programmatic advertising API documentation.

## Available Documentation Pages

Getting Started:
- /getting-started/ - Overview of IQM platform
- /getting-started/before-you-begin - Prerequisites
- /getting-started/api-pagination-guide - Pagination patterns
- /getting-started/typescript-prerequisites - TypeScript setup

API Guidelines:
- /guidelines/campaign-api - Campaign management
- /guidelines/creative-api - Creative upload/management
- /guidelines/audience-api - Audience targeting
- /guidelines/reports-api - Reporting endpoints
- /guidelines/conversion-api - Conversion tracking
- /guidelines/dashboard-api - Dashboard metrics
- /guidelines/insights-api - Performance insights

Quickstarts:
- /quickstart-guides/authentication-quickstart-guide - Auth setup
- /quickstart-guides/create-a-campaign-quickstart - Campaign creation
- /quickstart-guides/reporting-api-quickstart-guide - Reporting
- /quickstart-guides/upload-a-creative-quickstart - Creative upload

RULES:
- Be concise and accurate
- Only reference pages that exist above
- Provide code examples when helpful
- Use markdown formatting`

// Message is one turn of a caller-supplied conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Action describes a tool invocation surfaced alongside an answer.
type Action struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Result    any            `json:"result,omitempty"`
}

// Response is the single result of one chat request.
type Response struct {
	Text    string
	Actions []Action
	Model   string
	Success bool
	Error   string
}

// Assistant orchestrates one chat turn: retrieval, prompt assembly and
// the completion call. It is stateless across requests and safe for
// concurrent use.
type Assistant struct {
	catalog *catalog.Catalog
	search  *docsearch.Client
	gen     llm.Generator
	tools   *Registry
	model   string
	params  llm.GenParams
	logger  *log.Logger
}

// New wires an assistant over its collaborators and registers the
// built-in tool set.
func New(cat *catalog.Catalog, search *docsearch.Client, gen llm.Generator, model string, params llm.GenParams) *Assistant {
	if len(params.Stop) == 0 {
		params.Stop = []string{"</s>", "[INST]"}
	}
	a := &Assistant{
		catalog: cat,
		search:  search,
		gen:     gen,
		tools:   NewRegistry(),
		model:   model,
		params:  params,
		logger:  log.New(log.Writer(), "[ASSIST] ", log.LstdFlags),
	}
	a.registerBuiltinTools()
	return a
}

// Tools exposes the registry so callers can register additional tools
// before serving traffic. Registration during traffic is not safe.
func (a *Assistant) Tools() *Registry { return a.tools }

// Chat answers one user message. It always returns exactly one
// response; upstream failures are carried in the response, not raised.
func (a *Assistant) Chat(ctx context.Context, message string, history []Message, pageContext map[string]any) Response {
	ragContext := a.retrieveContext(ctx, message)
	prompt := a.buildPrompt(message, history, pageContext, ragContext)

	completion, err := a.gen.Complete(ctx, prompt, a.params)
	if err != nil {
		a.logger.Printf("completion failed: %v", err)
		return Response{
			Text:    "Error generating response: " + err.Error(),
			Actions: []Action{},
			Model:   a.model,
			Success: false,
			Error:   err.Error(),
		}
	}

	model := completion.Model
	if model == "" {
		model = a.model
	}
	return Response{
		Text:    completion.Text,
		Actions: []Action{},
		Model:   model,
		Success: true,
	}
}

// retrieveContext collects documentation snippets for the message.
// Best effort: any search failure yields an empty context.
func (a *Assistant) retrieveContext(ctx context.Context, message string) string {
	var b strings.Builder
	for _, hit := range a.search.Search(ctx, message, ragResults) {
		b.WriteString("### " + hit.Title + "\n")
		b.WriteString(truncate(hit.Content, snippetLimit) + "...\n\n")
	}
	return b.String()
}

// buildPrompt composes the full Mistral-instruct prompt. Section order
// is fixed: system instructions, retrieved documentation, current page,
// conversation history, then the user message.
func (a *Assistant) buildPrompt(message string, history []Message, pageContext map[string]any, ragContext string) string {
	var b strings.Builder

	b.WriteString("<s>[INST] ")
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	if ragContext != "" {
		b.WriteString("## Relevant Documentation\n")
		b.WriteString(ragContext)
		b.WriteString("\n\n")
	}

	if page, ok := pageContext["currentPage"].(string); ok && page != "" {
		fmt.Fprintf(&b, "User is currently viewing: %s\n\n", page)
	}

	for _, msg := range history {
		switch msg.Role {
		case "user":
			b.WriteString("User: " + msg.Content + "\n")
		case "assistant":
			b.WriteString("Assistant: " + msg.Content + "\n")
		}
	}

	b.WriteString("User: " + message + " [/INST]")
	return b.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
