// Package echo provides a testing provider that echoes back input messages.
// It implements the domain.CompletionAPI interface without making external
// API calls, keeping stored completions in memory. Used for local development
// when no OpenAI API key is configured.
package echo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/observability"
)

const chunkDelay = 10 * time.Millisecond

type storedCompletion struct {
	ID       string
	Model    string
	Content  string
	Created  int64
	Metadata map[string]string
	Messages []map[string]any
}

// Provider implements domain.CompletionAPI entirely in memory.
type Provider struct {
	mu          sync.RWMutex
	completions map[string]*storedCompletion
	order       []string
	seq         atomic.Int64
}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		completions: make(map[string]*storedCompletion),
	}
}

// Create echoes the request messages back as a completion. Payloads with
// store=true are kept for the retrieve/update/delete/list operations.
func (p *Provider) Create(ctx context.Context, payload map[string]any) (*domain.Completion, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("echoing request")

	completion := p.build(payload)

	if store, _ := payload["store"].(bool); store {
		p.mu.Lock()
		p.completions[completion.ID] = completion
		p.order = append(p.order, completion.ID)
		p.mu.Unlock()
	}

	return &domain.Completion{
		ID:  completion.ID,
		Raw: marshalCompletion(completion),
	}, nil
}

// CreateStream echoes the request messages back word by word.
func (p *Provider) CreateStream(ctx context.Context, payload map[string]any) (domain.ChunkStream, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("streaming echo request")

	completion := p.build(payload)

	return newStream(ctx, completion), nil
}

// Retrieve fetches a stored completion by id.
func (p *Provider) Retrieve(_ context.Context, id string) (*domain.Completion, error) {
	p.mu.RLock()
	completion, ok := p.completions[id]
	p.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}

	return &domain.Completion{ID: completion.ID, Raw: marshalCompletion(completion)}, nil
}

// Update replaces the metadata of a stored completion.
func (p *Provider) Update(_ context.Context, id string, metadata map[string]string) (*domain.Completion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	completion, ok := p.completions[id]
	if !ok {
		return nil, notFound(id)
	}

	completion.Metadata = metadata
	return &domain.Completion{ID: completion.ID, Raw: marshalCompletion(completion)}, nil
}

// Delete removes a stored completion.
func (p *Provider) Delete(_ context.Context, id string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.completions[id]; !ok {
		return false, notFound(id)
	}

	delete(p.completions, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}

	return true, nil
}

// List pages through stored completions in insertion order.
func (p *Provider) List(_ context.Context, filter domain.ListFilter) (*domain.Page, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	start := 0
	if filter.After != "" {
		for i, id := range p.order {
			if id == filter.After {
				start = i + 1
				break
			}
		}
	}

	limit := int(filter.Limit)
	if limit <= 0 {
		limit = 20
	}

	items := make([]json.RawMessage, 0, limit)
	ids := make([]string, 0, limit)
	hasMore := false
	for _, id := range p.order[min(start, len(p.order)):] {
		completion := p.completions[id]
		if filter.Model != "" && completion.Model != filter.Model {
			continue
		}
		if len(items) == limit {
			hasMore = true
			break
		}
		items = append(items, marshalCompletion(completion))
		ids = append(ids, id)
	}

	page := &domain.Page{Items: items, HasMore: hasMore}
	if hasMore && len(ids) > 0 {
		cursor := ids[len(ids)-1]
		page.NextCursor = &cursor
	}
	return page, nil
}

// ListMessages returns the request messages of a stored completion.
func (p *Provider) ListMessages(_ context.Context, id string, filter domain.MessageFilter) (*domain.Page, error) {
	p.mu.RLock()
	completion, ok := p.completions[id]
	p.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}

	items := make([]json.RawMessage, 0, len(completion.Messages))
	for i, message := range completion.Messages {
		entry := map[string]any{"id": fmt.Sprintf("%s-msg-%d", id, i)}
		for key, value := range message {
			entry[key] = value
		}
		raw, _ := json.Marshal(entry)
		items = append(items, raw)
	}

	if filter.Order == "desc" {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	if filter.Limit > 0 && int64(len(items)) > filter.Limit {
		items = items[:filter.Limit]
	}

	return &domain.Page{Items: items}, nil
}

func (p *Provider) build(payload map[string]any) *storedCompletion {
	model, _ := payload["model"].(string)

	var messages []map[string]any
	if rawMessages, ok := payload["messages"].([]any); ok {
		for _, raw := range rawMessages {
			if message, ok := raw.(map[string]any); ok {
				messages = append(messages, message)
			}
		}
	}

	var builder strings.Builder
	for _, message := range messages {
		role, _ := message["role"].(string)
		content, _ := message["content"].(string)
		builder.WriteString(fmt.Sprintf("[%s]: %s\n", role, content))
	}

	return &storedCompletion{
		ID:       fmt.Sprintf("echo-%d", p.seq.Add(1)),
		Model:    model,
		Content:  builder.String(),
		Created:  time.Now().Unix(),
		Messages: messages,
	}
}

func marshalCompletion(completion *storedCompletion) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"id":      completion.ID,
		"object":  "chat.completion",
		"model":   completion.Model,
		"created": completion.Created,
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": completion.Content},
				"finish_reason": "stop",
			},
		},
		"metadata": completion.Metadata,
	})
	return raw
}

func notFound(id string) error {
	return &domain.UpstreamError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("completion %s not found", id),
	}
}

// stream yields the echoed content word by word as OpenAI-shaped chunks.
type stream struct {
	ctx     context.Context
	id      string
	model   string
	words   []string
	pos     int
	current domain.StreamChunk
	closed  chan struct{}
	once    sync.Once
}

func newStream(ctx context.Context, completion *storedCompletion) *stream {
	return &stream{
		ctx:    ctx,
		id:     completion.ID,
		model:  completion.Model,
		words:  strings.Fields(completion.Content),
		closed: make(chan struct{}),
	}
}

func (s *stream) Next() bool {
	if s.pos >= len(s.words) {
		return false
	}

	select {
	case <-s.ctx.Done():
		return false
	case <-s.closed:
		return false
	case <-time.After(chunkDelay):
	}

	word := s.words[s.pos]
	s.pos++

	delta := word
	finish := any(nil)
	if s.pos == len(s.words) {
		finish = "stop"
	} else {
		delta += " "
	}

	raw, _ := json.Marshal(map[string]any{
		"id":      s.id,
		"object":  "chat.completion.chunk",
		"model":   s.model,
		"created": time.Now().Unix(),
		"choices": []map[string]any{
			{"index": 0, "delta": map[string]any{"content": delta}, "finish_reason": finish},
		},
	})
	s.current = domain.StreamChunk{ID: s.id, Raw: raw}
	return true
}

func (s *stream) Current() domain.StreamChunk {
	return s.current
}

func (s *stream) Err() error {
	return nil
}

func (s *stream) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}
