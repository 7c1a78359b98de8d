package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prismaglow/chatproxy/internal/observability"
)

// RequestDefaults are the operator-configured tags applied to every upstream
// call in addition to the caller-supplied ones.
type RequestDefaults struct {
	Tags     []string
	QuotaTag string
}

// GatewayService shapes proxy requests into upstream chat-completion calls.
// Every upstream call attempt produces exactly one debug event.
type GatewayService struct {
	api       CompletionAPI
	directory Directory
	recorder  DebugRecorder
	defaults  RequestDefaults
}

// NewGatewayService creates a new gateway service (DI constructor).
func NewGatewayService(
	api CompletionAPI,
	directory Directory,
	recorder DebugRecorder,
	defaults RequestDefaults,
) *GatewayService {
	return &GatewayService{
		api:       api,
		directory: directory,
		recorder:  recorder,
		defaults:  defaults,
	}
}

// Create forwards a buffered completion request upstream.
func (g *GatewayService) Create(ctx context.Context, userID string, req *ProxyRequest) (*Completion, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	ctx = observability.WithEndpoint(ctx, EndpointCreate)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return nil, err
	}

	completion, err := g.api.Create(ctx, req.Payload)
	if err != nil {
		g.record(ctx, syntheticRequestID(), EndpointCreate, req, false)
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	g.record(ctx, completion.ID, EndpointCreate, req, false)
	return completion, nil
}

// OpenStream issues the upstream streaming call and returns the chunk
// iterator. The debug event for the call is written by RecordStreamCall once
// the stream id is known; an immediate upstream failure records one here with
// a synthesized id.
func (g *GatewayService) OpenStream(ctx context.Context, userID string, req *ProxyRequest) (ChunkStream, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	ctx = observability.WithEndpoint(ctx, EndpointCreate)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return nil, err
	}

	stream, err := g.api.CreateStream(ctx, req.Payload)
	if err != nil {
		g.record(ctx, syntheticRequestID(), EndpointCreate, req, true)
		return nil, fmt.Errorf("failed to open upstream stream: %w", err)
	}

	return stream, nil
}

// RecordStreamCall appends the debug event for a streaming create. Called by
// the relay as soon as the upstream stream id is known, before the first chunk
// is written, so telemetry exists even under an immediate disconnect.
func (g *GatewayService) RecordStreamCall(ctx context.Context, req *ProxyRequest, streamID string) {
	if streamID == "" {
		streamID = syntheticRequestID()
	}
	// The request context may already be canceled by a client disconnect.
	g.record(context.WithoutCancel(ctx), streamID, EndpointCreate, req, true)
}

// Retrieve fetches a stored completion by id.
func (g *GatewayService) Retrieve(ctx context.Context, userID string, req *ProxyRequest, id string) (*Completion, error) {
	ctx = observability.WithEndpoint(ctx, EndpointRetrieve)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return nil, err
	}

	completion, err := g.api.Retrieve(ctx, id)
	g.record(ctx, id, EndpointRetrieve, req, false)
	if err != nil {
		return nil, fmt.Errorf("retrieve failed: %w", err)
	}

	return completion, nil
}

// Update replaces the metadata of a stored completion.
func (g *GatewayService) Update(ctx context.Context, userID string, req *ProxyRequest, id string, metadata map[string]string) (*Completion, error) {
	ctx = observability.WithEndpoint(ctx, EndpointUpdate)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return nil, err
	}

	completion, err := g.api.Update(ctx, id, metadata)
	g.record(ctx, id, EndpointUpdate, req, false)
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	return completion, nil
}

// Delete removes a stored completion.
func (g *GatewayService) Delete(ctx context.Context, userID string, req *ProxyRequest, id string) (bool, error) {
	ctx = observability.WithEndpoint(ctx, EndpointDelete)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return false, err
	}

	deleted, err := g.api.Delete(ctx, id)
	g.record(ctx, id, EndpointDelete, req, false)
	if err != nil {
		return false, fmt.Errorf("delete failed: %w", err)
	}

	return deleted, nil
}

// List pages through stored completions.
func (g *GatewayService) List(ctx context.Context, userID string, req *ProxyRequest, filter ListFilter) (*Page, error) {
	ctx = observability.WithEndpoint(ctx, EndpointList)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return nil, err
	}

	page, err := g.api.List(ctx, filter)
	g.record(ctx, syntheticRequestID(), EndpointList, req, false)
	if err != nil {
		return nil, fmt.Errorf("list failed: %w", err)
	}

	return page, nil
}

// ListMessages pages through the stored messages of a completion.
func (g *GatewayService) ListMessages(ctx context.Context, userID string, req *ProxyRequest, id string, filter MessageFilter) (*Page, error) {
	ctx = observability.WithEndpoint(ctx, EndpointListMessages)

	if _, err := g.authorize(ctx, req.OrgSlug, userID); err != nil {
		return nil, err
	}

	page, err := g.api.ListMessages(ctx, id, filter)
	g.record(ctx, id, EndpointListMessages, req, false)
	if err != nil {
		return nil, fmt.Errorf("list messages failed: %w", err)
	}

	return page, nil
}

func (g *GatewayService) authorize(ctx context.Context, orgSlug, userID string) (*Organization, error) {
	if orgSlug == "" {
		return nil, ErrOrgNotFound
	}

	org, err := g.directory.Authorize(ctx, orgSlug, userID)
	if err != nil {
		observability.FromContext(ctx).Warn("organization authorization failed",
			observability.String("org_slug", orgSlug),
			observability.Error(err),
		)
		return nil, err
	}

	return org, nil
}

func (g *GatewayService) record(ctx context.Context, requestID, endpoint string, req *ProxyRequest, streaming bool) {
	g.recorder.Record(ctx, &DebugEvent{
		RequestID:      requestID,
		Endpoint:       endpoint,
		Metadata:       g.metadata(req, streaming),
		RequestPayload: req.RequestLogPayload,
		CreatedAt:      time.Now(),
	})
}

func (g *GatewayService) metadata(req *ProxyRequest, streaming bool) DebugMetadata {
	quotaTag := req.QuotaTag
	if quotaTag == "" {
		quotaTag = g.defaults.QuotaTag
	}

	extras := map[string]any{
		"orgSlug": req.OrgSlug,
	}

	tags := make([]string, 0, len(g.defaults.Tags)+len(req.Tags))
	tags = append(tags, g.defaults.Tags...)
	tags = append(tags, req.Tags...)
	if len(tags) > 0 {
		extras["tags"] = tags
	}

	if len(req.Metadata) > 0 {
		extras["metadata"] = req.Metadata
	}

	if streaming {
		extras["streaming"] = true
	}

	return DebugMetadata{
		QuotaTag: quotaTag,
		Extras:   extras,
	}
}

func syntheticRequestID() string {
	return "synthetic_" + uuid.New().String()
}
