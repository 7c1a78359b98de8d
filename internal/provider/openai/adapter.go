// Package openai provides an adapter for the OpenAI API using the official
// SDK. It implements the domain.CompletionAPI interface and forwards the
// caller's payload verbatim: only the fields the gateway inspects are typed,
// everything else is passed through so new provider fields keep working
// without code changes.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
	"github.com/openai/openai-go/shared"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/observability"
)

// Provider implements domain.CompletionAPI for OpenAI.
type Provider struct {
	client openai.Client
}

// NewProvider creates a new OpenAI provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client: openai.NewClient(opts...),
	}, nil
}

// Create sends a buffered completion request and returns the full response.
func (p *Provider) Create(ctx context.Context, payload map[string]any) (*domain.Completion, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI chat completions create")

	params, opts := passthroughParams(payload)

	resp, err := p.client.Chat.Completions.New(ctx, params, opts...)
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	return &domain.Completion{
		ID:  resp.ID,
		Raw: json.RawMessage(resp.RawJSON()),
	}, nil
}

// CreateStream sends a streaming completion request and returns the chunk
// iterator. Closing the returned stream aborts the upstream call.
func (p *Provider) CreateStream(ctx context.Context, payload map[string]any) (domain.ChunkStream, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI chat completions streaming create")

	params, opts := passthroughParams(payload)

	stream := p.client.Chat.Completions.NewStreaming(ctx, params, opts...)

	return &chunkStream{inner: stream}, nil
}

// Retrieve fetches a stored completion by id.
func (p *Provider) Retrieve(ctx context.Context, id string) (*domain.Completion, error) {
	resp, err := p.client.Chat.Completions.Get(ctx, id)
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	return &domain.Completion{
		ID:  resp.ID,
		Raw: json.RawMessage(resp.RawJSON()),
	}, nil
}

// Update replaces the metadata of a stored completion.
func (p *Provider) Update(ctx context.Context, id string, metadata map[string]string) (*domain.Completion, error) {
	resp, err := p.client.Chat.Completions.Update(ctx, id, openai.ChatCompletionUpdateParams{
		Metadata: shared.Metadata(metadata),
	})
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	return &domain.Completion{
		ID:  resp.ID,
		Raw: json.RawMessage(resp.RawJSON()),
	}, nil
}

// Delete removes a stored completion.
func (p *Provider) Delete(ctx context.Context, id string) (bool, error) {
	resp, err := p.client.Chat.Completions.Delete(ctx, id)
	if err != nil {
		return false, wrapUpstreamError(err)
	}

	return resp.Deleted, nil
}

// List pages through stored completions.
func (p *Provider) List(ctx context.Context, filter domain.ListFilter) (*domain.Page, error) {
	params := openai.ChatCompletionListParams{}
	if filter.After != "" {
		params.After = openai.String(filter.After)
	}
	if filter.Limit > 0 {
		params.Limit = openai.Int(filter.Limit)
	}
	if filter.Model != "" {
		params.Model = openai.String(filter.Model)
	}

	page, err := p.client.Chat.Completions.List(ctx, params)
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	items := make([]json.RawMessage, len(page.Data))
	ids := make([]string, len(page.Data))
	for i, completion := range page.Data {
		items[i] = json.RawMessage(completion.RawJSON())
		ids[i] = completion.ID
	}

	return normalizePage(items, ids, page.HasMore), nil
}

// ListMessages pages through the stored messages of a completion.
func (p *Provider) ListMessages(ctx context.Context, id string, filter domain.MessageFilter) (*domain.Page, error) {
	params := openai.ChatCompletionMessageListParams{}
	if filter.After != "" {
		params.After = openai.String(filter.After)
	}
	if filter.Limit > 0 {
		params.Limit = openai.Int(filter.Limit)
	}
	switch filter.Order {
	case "asc":
		params.Order = openai.ChatCompletionMessageListParamsOrderAsc
	case "desc":
		params.Order = openai.ChatCompletionMessageListParamsOrderDesc
	}

	page, err := p.client.Chat.Completions.Messages.List(ctx, id, params)
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	items := make([]json.RawMessage, len(page.Data))
	ids := make([]string, len(page.Data))
	for i, message := range page.Data {
		items[i] = json.RawMessage(message.RawJSON())
		ids[i] = message.ID
	}

	return normalizePage(items, ids, page.HasMore), nil
}

// passthroughParams splits the opaque payload into typed SDK params and
// per-field JSON overrides. The model is the only field the SDK needs typed;
// every other key is injected into the serialized request body as-is.
func passthroughParams(payload map[string]any) (openai.ChatCompletionNewParams, []option.RequestOption) {
	params := openai.ChatCompletionNewParams{}
	opts := make([]option.RequestOption, 0, len(payload))

	for key, value := range payload {
		switch key {
		case "model":
			if model, ok := value.(string); ok {
				params.Model = openai.ChatModel(model)
			}
		case "stream":
			// Streaming is decided by the gateway (New vs NewStreaming);
			// the SDK sets the wire flag itself.
		default:
			opts = append(opts, option.WithJSONSet(key, value))
		}
	}

	return params, opts
}

// normalizePage computes the next cursor from the current page: the last item
// id when more pages exist, nil otherwise.
func normalizePage(items []json.RawMessage, ids []string, hasMore bool) *domain.Page {
	page := &domain.Page{
		Items:   items,
		HasMore: hasMore,
	}

	if hasMore && len(ids) > 0 {
		cursor := ids[len(ids)-1]
		page.NextCursor = &cursor
	}

	return page
}

func wrapUpstreamError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &domain.UpstreamError{
			StatusCode: apierr.StatusCode,
			Message:    apierr.Message,
			Err:        err,
		}
	}

	return fmt.Errorf("OpenAI API call failed: %w", err)
}

// chunkStream adapts the SDK's SSE stream to domain.ChunkStream.
type chunkStream struct {
	inner *ssestream.Stream[openai.ChatCompletionChunk]
}

func (s *chunkStream) Next() bool {
	return s.inner.Next()
}

func (s *chunkStream) Current() domain.StreamChunk {
	chunk := s.inner.Current()
	return domain.StreamChunk{
		ID:  chunk.ID,
		Raw: json.RawMessage(chunk.RawJSON()),
	}
}

func (s *chunkStream) Err() error {
	if err := s.inner.Err(); err != nil {
		return wrapUpstreamError(err)
	}
	return nil
}

func (s *chunkStream) Close() error {
	return s.inner.Close()
}
