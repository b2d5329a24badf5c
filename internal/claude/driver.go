package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/logging"
)

const messagesPath = "v1/messages"

// Driver runs completions against the Messages API. It owns the request
// shape end to end so beta tool-result blocks survive the round trip
// through conversation history.
type Driver struct {
	client         anthropic.Client
	model          string
	maxTokens      int64
	thinkingBudget int64
	logger         *logging.Logger
}

// NewDriver builds a driver for the given model. The API key comes from
// the caller so key handling stays in one place.
func NewDriver(apiKey, model string, maxTokens, thinkingBudget int64) *Driver {
	return &Driver{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:          model,
		maxTokens:      maxTokens,
		thinkingBudget: thinkingBudget,
		logger:         logging.WithComponent("claude"),
	}
}

// Request carries the per-turn inputs of a completion.
type Request struct {
	System   string
	Messages []Message
	Tools    []ToolSpec
}

// completionResponse is the blocking response envelope. Usage and stop
// reason are logged, not surfaced.
type completionResponse struct {
	ID         string  `json:"id"`
	Role       string  `json:"role"`
	Content    []Block `json:"content"`
	StopReason string  `json:"stop_reason"`
	Usage      Usage   `json:"usage"`
}

// Usage is the token accounting the API reports per completion.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// body assembles the JSON request body. Extended thinking is always on;
// the stream flag is set by the streaming path.
func (d *Driver) body(req Request, stream bool) map[string]any {
	body := map[string]any{
		"model":      d.model,
		"max_tokens": d.maxTokens,
		"messages":   req.Messages,
		"thinking": map[string]any{
			"type":          "enabled",
			"budget_tokens": d.thinkingBudget,
		},
	}
	if req.System != "" {
		body["system"] = req.System
	}
	if len(req.Tools) > 0 {
		body["tools"] = req.Tools
	}
	if stream {
		body["stream"] = true
	}
	return body
}

// requestOptions returns per-request options, adding the web fetch beta
// header only when the tool list needs it.
func (d *Driver) requestOptions(req Request) []option.RequestOption {
	if NeedsBetaHeader(req.Tools) {
		return []option.RequestOption{option.WithHeaderAdd("anthropic-beta", WebFetchBetaHeader)}
	}
	return nil
}

// Complete runs a blocking completion and returns the assistant message
// with its full structured content.
func (d *Driver) Complete(ctx context.Context, req Request) (*Message, error) {
	var resp completionResponse
	err := d.client.Post(ctx, messagesPath, d.body(req, false), &resp, d.requestOptions(req)...)
	if err != nil {
		d.logger.Error("Completion failed", "error", err)
		return nil, err
	}
	d.logger.Debug("Completion finished",
		"id", resp.ID,
		"stopReason", resp.StopReason,
		"inputTokens", resp.Usage.InputTokens,
		"outputTokens", resp.Usage.OutputTokens,
		"blocks", len(resp.Content))
	return &Message{Role: RoleAssistant, Content: resp.Content}, nil
}

// RateLimitMessage is shown when the backend throttles a request.
const RateLimitMessage = "⚠️ Rate limit reached. Please wait a moment before trying again."

// FailureMessage maps a completion error onto the text shown in place of
// the assistant's reply. Each failure class keeps a distinct message so
// the transcript records what actually happened.
func FailureMessage(err error) string {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusTooManyRequests {
			return RateLimitMessage
		}
		return fmt.Sprintf("API error %d: %s", apierr.StatusCode, apierr.Error())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Unexpected API error: %v", err)
	}
	return fmt.Sprintf("Unhandled error while calling the assistant: %v", err)
}
