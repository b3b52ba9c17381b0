package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iqm-labs/docassist/internal/assistant"
)

// ChatHandler serves the chat routes. /v1/chat and /api/ai/chat use the
// native response schema; /completion mirrors the llama.cpp schema so
// the backend can stand in for a bare llama-server.
type ChatHandler struct {
	Assistant *assistant.Assistant
}

func (h *ChatHandler) Register(e *echo.Echo) {
	e.POST("/v1/chat", h.chat)
	e.POST("/api/ai/chat", h.chat)
	e.POST("/completion", h.completion)
}

// chatRequest is the normalized form of the three accepted body shapes.
type chatRequest struct {
	Message     string
	History     []assistant.Message
	PageContext map[string]any
}

// normalizeChatBody picks exactly one body shape, by field presence, in
// priority order: OpenAI-style {messages}, native {message, context},
// bare {prompt}.
func normalizeChatBody(raw map[string]json.RawMessage) (chatRequest, error) {
	var req chatRequest

	if data, ok := raw["messages"]; ok {
		var messages []assistant.Message
		if err := json.Unmarshal(data, &messages); err != nil {
			return req, echo.NewHTTPError(http.StatusBadRequest, "malformed messages field")
		}
		if len(messages) > 0 {
			req.Message = messages[len(messages)-1].Content
			req.History = messages[:len(messages)-1]
		}
		return req, nil
	}

	if data, ok := raw["message"]; ok {
		if err := json.Unmarshal(data, &req.Message); err != nil {
			return req, echo.NewHTTPError(http.StatusBadRequest, "malformed message field")
		}
		if ctxData, ok := raw["context"]; ok {
			if err := json.Unmarshal(ctxData, &req.PageContext); err != nil {
				return req, echo.NewHTTPError(http.StatusBadRequest, "malformed context field")
			}
			if histData, ok := req.PageContext["conversationHistory"]; ok {
				req.History = messagesFromAny(histData)
			}
		}
		return req, nil
	}

	if data, ok := raw["prompt"]; ok {
		if err := json.Unmarshal(data, &req.Message); err != nil {
			return req, echo.NewHTTPError(http.StatusBadRequest, "malformed prompt field")
		}
		return req, nil
	}

	return req, echo.NewHTTPError(http.StatusBadRequest, "missing message or prompt")
}

func messagesFromAny(v any) []assistant.Message {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []assistant.Message
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		role, _ := m["role"].(string)
		content, _ := m["content"].(string)
		out = append(out, assistant.Message{Role: role, Content: content})
	}
	return out
}

// nativeResponse is the chat schema served on /v1/chat and /api/ai/chat.
type nativeResponse struct {
	Response string             `json:"response"`
	Actions  []assistant.Action `json:"actions"`
	Model    string             `json:"model"`
	Success  bool               `json:"success"`
	Error    string             `json:"error,omitempty"`
}

// completionResponse is the llama.cpp-compatible schema on /completion.
type completionResponse struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Stop    bool   `json:"stop"`
}

func (h *ChatHandler) handle(c echo.Context) (assistant.Response, error) {
	var raw map[string]json.RawMessage
	if err := c.Bind(&raw); err != nil {
		return assistant.Response{}, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}

	req, err := normalizeChatBody(raw)
	if err != nil {
		return assistant.Response{}, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return assistant.Response{}, echo.NewHTTPError(http.StatusBadRequest, "message must not be empty")
	}

	result := h.Assistant.Chat(c.Request().Context(), req.Message, req.History, req.PageContext)
	observeChat(result.Success)
	return result, nil
}

func (h *ChatHandler) chat(c echo.Context) error {
	result, err := h.handle(c)
	if err != nil {
		return err
	}
	// Generation failures still answer 200: the outcome travels in the
	// payload so browser clients can render it.
	return c.JSON(http.StatusOK, nativeResponse{
		Response: result.Text,
		Actions:  result.Actions,
		Model:    result.Model,
		Success:  result.Success,
		Error:    result.Error,
	})
}

func (h *ChatHandler) completion(c echo.Context) error {
	result, err := h.handle(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, completionResponse{
		Content: result.Text,
		Model:   result.Model,
		Stop:    true,
	})
}
