package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iqm-labs/docassist/internal/catalog"
	"github.com/iqm-labs/docassist/internal/docsearch"
	"github.com/iqm-labs/docassist/internal/llm"
)

// captureGen records the prompt it was handed and replies canned text.
type captureGen struct {
	prompt string
	params llm.GenParams
	reply  llm.Completion
	err    error
	calls  int
}

func (g *captureGen) Complete(ctx context.Context, prompt string, params llm.GenParams) (llm.Completion, error) {
	g.calls++
	g.prompt = prompt
	g.params = params
	return g.reply, g.err
}

func (g *captureGen) Stream(ctx context.Context, prompt string, params llm.GenParams, fn llm.StreamFunc) error {
	return llm.ErrStreamingUnsupported
}

func testParams() llm.GenParams {
	return llm.GenParams{MaxTokens: 512, Temperature: 0.7, TopP: 0.9}
}

// noSearch is a search client without credentials: always empty.
func noSearch() *docsearch.Client { return docsearch.New("", "", "iqm_docs") }

func newTestAssistant(gen llm.Generator, search *docsearch.Client) *Assistant {
	return New(catalog.New(), search, gen, "mistral-7b-local", testParams())
}

func TestChatBuildsInstructPrompt(t *testing.T) {
	gen := &captureGen{reply: llm.Completion{Text: "answer", Model: "mistral-7b"}}
	a := newTestAssistant(gen, noSearch())

	history := []Message{
		{Role: "user", Content: "What is a campaign?"},
		{Role: "assistant", Content: "A campaign is..."},
		{Role: "system", Content: "ignored in rendering"},
	}
	pageCtx := map[string]any{"currentPage": "/guidelines/campaign-api"}

	resp := a.Chat(context.Background(), "How do I set a budget?", history, pageCtx)
	if !resp.Success {
		t.Fatalf("chat failed: %s", resp.Error)
	}
	if resp.Text != "answer" || resp.Model != "mistral-7b" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Actions == nil {
		t.Fatal("actions must be non-nil")
	}

	p := gen.prompt
	if !strings.HasPrefix(p, "<s>[INST] ") || !strings.HasSuffix(p, " [/INST]") {
		t.Fatalf("prompt not wrapped in instruct delimiters: %q", p)
	}
	if !strings.Contains(p, "User is currently viewing: /guidelines/campaign-api") {
		t.Fatal("page context missing from prompt")
	}
	if !strings.Contains(p, "User: What is a campaign?\n") {
		t.Fatal("history user turn missing")
	}
	if !strings.Contains(p, "Assistant: A campaign is...\n") {
		t.Fatal("history assistant turn missing")
	}
	if strings.Contains(p, "ignored in rendering") {
		t.Fatal("system history turns must not render")
	}
	if !strings.Contains(p, "User: How do I set a budget? [/INST]") {
		t.Fatal("final user message missing")
	}

	// section order: page context before history, history before message
	pageIdx := strings.Index(p, "User is currently viewing")
	histIdx := strings.Index(p, "User: What is a campaign?")
	msgIdx := strings.Index(p, "User: How do I set a budget?")
	if !(pageIdx < histIdx && histIdx < msgIdx) {
		t.Fatalf("prompt sections out of order: %d %d %d", pageIdx, histIdx, msgIdx)
	}

	if g := gen.params; g.Temperature != 0.7 || g.TopP != 0.9 || g.MaxTokens != 512 {
		t.Fatalf("unexpected generation params: %+v", g)
	}
	if len(gen.params.Stop) != 2 || gen.params.Stop[1] != "[INST]" {
		t.Fatalf("stop sequences not defaulted: %v", gen.params.Stop)
	}
}

func TestChatTruncatesSnippetsAt500Chars(t *testing.T) {
	long := strings.Repeat("x", 2000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"hits": []map[string]string{
			{"title": "Campaign API", "url": "/guidelines/campaign-api", "content": long},
		}})
	}))
	defer srv.Close()

	gen := &captureGen{reply: llm.Completion{Text: "ok"}}
	search := docsearch.New("app", "key", "iqm_docs", docsearch.WithBaseURL(srv.URL))
	a := newTestAssistant(gen, search)

	resp := a.Chat(context.Background(), "budget", nil, nil)
	if !resp.Success {
		t.Fatalf("chat failed: %s", resp.Error)
	}
	if !strings.Contains(gen.prompt, "## Relevant Documentation") {
		t.Fatal("documentation section missing from prompt")
	}
	if !strings.Contains(gen.prompt, "### Campaign API\n") {
		t.Fatal("snippet heading missing from prompt")
	}
	if !strings.Contains(gen.prompt, strings.Repeat("x", 500)+"...") {
		t.Fatal("snippet not truncated to 500 chars")
	}
	if strings.Contains(gen.prompt, strings.Repeat("x", 501)) {
		t.Fatal("snippet exceeds 500 chars")
	}
}

func TestChatOmitsDocSectionWhenSearchDisabled(t *testing.T) {
	gen := &captureGen{reply: llm.Completion{Text: "ok"}}
	a := newTestAssistant(gen, noSearch())

	a.Chat(context.Background(), "budget", nil, nil)
	if strings.Contains(gen.prompt, "## Relevant Documentation") {
		t.Fatal("empty documentation context must not emit a section")
	}
}

func TestChatSurfacesGenerationFailure(t *testing.T) {
	gen := &captureGen{err: errors.New("connection refused")}
	a := newTestAssistant(gen, noSearch())

	resp := a.Chat(context.Background(), "hello", nil, nil)
	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Error == "" {
		t.Fatal("expected non-empty error")
	}
	if resp.Model != "mistral-7b-local" {
		t.Fatalf("failed responses still carry the model name, got %q", resp.Model)
	}
	if !strings.Contains(resp.Text, "Error generating response") {
		t.Fatalf("unexpected failure text: %q", resp.Text)
	}
}

func TestChatModelFallsBackWhenBackendOmitsIt(t *testing.T) {
	gen := &captureGen{reply: llm.Completion{Text: "ok"}}
	a := newTestAssistant(gen, noSearch())

	resp := a.Chat(context.Background(), "hello", nil, nil)
	if resp.Model != "mistral-7b-local" {
		t.Fatalf("expected configured model, got %q", resp.Model)
	}
}
