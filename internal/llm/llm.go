package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrStreamingUnsupported is returned by Stream: the hook exists for
// future token streaming but the orchestration path never uses it.
var ErrStreamingUnsupported = errors.New("streaming completion not supported")

// GenParams are the generation parameters sent with a completion call.
type GenParams struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	Stop        []string
}

// Completion is the result of one completion call.
type Completion struct {
	Text  string
	Model string
}

// StreamFunc receives generated tokens as they arrive.
type StreamFunc func(token string)

// Generator performs prompt completion against a text-generation backend.
type Generator interface {
	Complete(ctx context.Context, prompt string, params GenParams) (Completion, error)
	Stream(ctx context.Context, prompt string, params GenParams, fn StreamFunc) error
}

// client talks to a llama-server /completion endpoint.
type client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a llama-server completion client. model is the
// identifier reported to callers when the server does not name one.
func NewClient(baseURL, model string, timeout time.Duration) Generator {
	return &client{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// request is the llama-server completion request body.
type request struct {
	Prompt      string   `json:"prompt"`
	NPredict    int      `json:"n_predict"`
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	Stop        []string `json:"stop,omitempty"`
}

// response is the llama-server completion reply.
type response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
}

// Complete issues exactly one blocking completion call. No retries.
func (c *client) Complete(ctx context.Context, prompt string, params GenParams) (Completion, error) {
	body, err := json.Marshal(request{
		Prompt:      prompt,
		NPredict:    params.MaxTokens,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		Stop:        params.Stop,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/completion", bytes.NewBuffer(body))
	if err != nil {
		return Completion{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Completion{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Completion{}, fmt.Errorf("llama-server returned status: %d", resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Completion{}, fmt.Errorf("failed to parse response: %w", err)
	}

	model := out.Model
	if model == "" {
		model = c.model
	}
	return Completion{Text: out.Content, Model: model}, nil
}

// Stream is a placeholder for token streaming.
func (c *client) Stream(ctx context.Context, prompt string, params GenParams, fn StreamFunc) error {
	return ErrStreamingUnsupported
}

// Ping probes the backend health endpoint. Used only to log degraded
// mode at startup; a failed ping never aborts the process.
func Ping(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := (&http.Client{Timeout: 5 * time.Second}).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend returned status: %d", resp.StatusCode)
	}
	return nil
}
