package claude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

// streamEvent is one server-sent event of a streaming completion. The
// payload shape varies by type; only the fields a given type uses are set.
type streamEvent struct {
	Type         string          `json:"type"`
	Index        int             `json:"index"`
	Message      json.RawMessage `json:"message"`
	ContentBlock json.RawMessage `json:"content_block"`
	Delta        streamDelta     `json:"delta"`
	Error        *streamError    `json:"error"`
}

// streamDelta covers both content_block_delta and message_delta payloads.
type streamDelta struct {
	Type        string          `json:"type"`
	Text        string          `json:"text"`
	PartialJSON string          `json:"partial_json"`
	Thinking    string          `json:"thinking"`
	Signature   string          `json:"signature"`
	Citation    json.RawMessage `json:"citation"`
	StopReason  string          `json:"stop_reason"`
}

type streamError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// messageStart is the skeleton carried by a message_start event.
type messageStart struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Usage Usage  `json:"usage"`
}

// Stream runs a streaming completion. onDelta receives each visible text
// fragment as it arrives; the returned message is the fully accumulated
// structured result, equivalent to what Complete would have returned.
func (d *Driver) Stream(ctx context.Context, req Request, onDelta func(string)) (*Message, error) {
	var raw *http.Response
	err := d.client.Post(ctx, messagesPath, d.body(req, true), &raw, d.requestOptions(req)...)
	stream := ssestream.NewStream[streamEvent](ssestream.NewDecoder(raw), err)
	defer stream.Close()

	acc := newAccumulator()
	for stream.Next() {
		event := stream.Current()
		if event.Type == "error" {
			if event.Error != nil {
				return nil, fmt.Errorf("stream error (%s): %s", event.Error.Type, event.Error.Message)
			}
			return nil, errors.New("stream error")
		}
		if err := acc.apply(event, onDelta); err != nil {
			d.logger.Error("Stream accumulation failed", "eventType", event.Type, "error", err)
			return nil, err
		}
	}
	if err := stream.Err(); err != nil {
		d.logger.Error("Stream failed", "error", err)
		return nil, err
	}
	msg, err := acc.finish()
	if err != nil {
		d.logger.Error("Stream ended incomplete", "error", err)
		return nil, err
	}
	d.logger.Debug("Stream finished",
		"id", acc.id,
		"stopReason", acc.stopReason,
		"blocks", len(msg.Content))
	return msg, nil
}

// accumulator folds stream events back into the blocking response shape.
// Each in-flight block keeps the JSON object from its start event plus
// the delta fragments, merged on content_block_stop.
type accumulator struct {
	id         string
	stopReason string
	started    bool
	stopped    bool
	blocks     []Block
	open       map[int]*openBlock
}

type openBlock struct {
	base        map[string]any
	text        strings.Builder
	thinking    strings.Builder
	partialJSON strings.Builder
	signature   strings.Builder
	citations   []json.RawMessage
}

func newAccumulator() *accumulator {
	return &accumulator{open: make(map[int]*openBlock)}
}

func (a *accumulator) apply(event streamEvent, onDelta func(string)) error {
	switch event.Type {
	case "message_start":
		var start messageStart
		if err := json.Unmarshal(event.Message, &start); err != nil {
			return fmt.Errorf("decoding message_start: %w", err)
		}
		a.id = start.ID
		a.started = true
	case "content_block_start":
		base := make(map[string]any)
		if err := json.Unmarshal(event.ContentBlock, &base); err != nil {
			return fmt.Errorf("decoding content_block_start: %w", err)
		}
		a.open[event.Index] = &openBlock{base: base}
	case "content_block_delta":
		block, ok := a.open[event.Index]
		if !ok {
			return fmt.Errorf("delta for unknown block index %d", event.Index)
		}
		switch event.Delta.Type {
		case "text_delta":
			block.text.WriteString(event.Delta.Text)
			if onDelta != nil {
				onDelta(event.Delta.Text)
			}
		case "thinking_delta":
			block.thinking.WriteString(event.Delta.Thinking)
		case "input_json_delta":
			block.partialJSON.WriteString(event.Delta.PartialJSON)
		case "signature_delta":
			block.signature.WriteString(event.Delta.Signature)
		case "citations_delta":
			block.citations = append(block.citations, event.Delta.Citation)
		}
	case "content_block_stop":
		block, ok := a.open[event.Index]
		if !ok {
			return fmt.Errorf("stop for unknown block index %d", event.Index)
		}
		delete(a.open, event.Index)
		finished, err := block.finalize()
		if err != nil {
			return err
		}
		a.blocks = append(a.blocks, finished)
	case "message_delta":
		a.stopReason = event.Delta.StopReason
	case "message_stop":
		a.stopped = true
	case "ping":
	}
	return nil
}

// finalize merges the accumulated deltas into the start-event object and
// reparses it as a Block, so streamed blocks carry the same raw wire form
// a blocking response would.
func (b *openBlock) finalize() (Block, error) {
	if b.text.Len() > 0 {
		prefix, _ := b.base["text"].(string)
		b.base["text"] = prefix + b.text.String()
	}
	if b.thinking.Len() > 0 {
		prefix, _ := b.base["thinking"].(string)
		b.base["thinking"] = prefix + b.thinking.String()
	}
	if b.signature.Len() > 0 {
		b.base["signature"] = b.signature.String()
	}
	if b.partialJSON.Len() > 0 {
		var input any
		if err := json.Unmarshal([]byte(b.partialJSON.String()), &input); err != nil {
			return Block{}, fmt.Errorf("decoding accumulated tool input: %w", err)
		}
		b.base["input"] = input
	}
	if len(b.citations) > 0 {
		existing, _ := b.base["citations"].([]any)
		for _, raw := range b.citations {
			var citation any
			if err := json.Unmarshal(raw, &citation); err != nil {
				return Block{}, fmt.Errorf("decoding citation delta: %w", err)
			}
			existing = append(existing, citation)
		}
		b.base["citations"] = existing
	}
	data, err := json.Marshal(b.base)
	if err != nil {
		return Block{}, fmt.Errorf("encoding accumulated block: %w", err)
	}
	var block Block
	if err := json.Unmarshal(data, &block); err != nil {
		return Block{}, fmt.Errorf("reparsing accumulated block: %w", err)
	}
	return block, nil
}

func (a *accumulator) finish() (*Message, error) {
	if !a.started {
		return nil, errors.New("stream ended before a message started")
	}
	if !a.stopped {
		return nil, errors.New("stream ended without a final message")
	}
	return &Message{Role: RoleAssistant, Content: a.blocks}, nil
}
