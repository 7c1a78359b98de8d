package domain

import (
	"encoding/json"
	"time"
)

// ProxyRequest is the caller-supplied envelope around an upstream payload.
// Only the fields the gateway inspects are typed; the payload itself is
// forwarded to the upstream provider unmodified.
type ProxyRequest struct {
	OrgSlug           string            `json:"orgSlug"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
	QuotaTag          string            `json:"quotaTag,omitempty"`
	RequestLogPayload json.RawMessage   `json:"requestLogPayload,omitempty"`
	Payload           map[string]any    `json:"payload"`
}

// Streaming reports whether the upstream payload requests a token stream.
func (r *ProxyRequest) Streaming() bool {
	if r == nil || r.Payload == nil {
		return false
	}
	stream, _ := r.Payload["stream"].(bool)
	return stream
}

// Completion is an upstream completion object, kept verbatim. Only the id is
// lifted out for correlation with debug events.
type Completion struct {
	ID  string
	Raw json.RawMessage
}

// MarshalJSON emits the upstream JSON unchanged.
func (c Completion) MarshalJSON() ([]byte, error) {
	if c.Raw == nil {
		return []byte("null"), nil
	}
	return c.Raw, nil
}

// StreamChunk is one provider-emitted delta event, kept verbatim. The id is
// stable across one logical completion and tags the stream's debug event.
type StreamChunk struct {
	ID  string
	Raw json.RawMessage
}

// ListFilter carries the supported filters for listing stored completions.
type ListFilter struct {
	After string
	Limit int64
	Model string
}

// MessageFilter carries the supported filters for listing stored messages.
type MessageFilter struct {
	After string
	Limit int64
	Order string
}

// Page is the normalized shape of one upstream page.
type Page struct {
	Items      []json.RawMessage `json:"items"`
	HasMore    bool              `json:"hasMore"`
	NextCursor *string           `json:"nextCursor"`
}

// Organization is a tenant resolved from its slug.
type Organization struct {
	ID   string
	Slug string
}

// Upstream endpoint names used to tag debug events.
const (
	EndpointCreate       = "chat.completions.create"
	EndpointRetrieve     = "chat.completions.retrieve"
	EndpointUpdate       = "chat.completions.update"
	EndpointDelete       = "chat.completions.delete"
	EndpointList         = "chat.completions.list"
	EndpointListMessages = "chat.completions.messages.list"
)

// DebugMetadata is the structured metadata attached to a debug event.
type DebugMetadata struct {
	QuotaTag string         `json:"quota_tag,omitempty"`
	Extras   map[string]any `json:"extras"`
}

// DebugEvent is one append-only audit record per upstream call attempt.
// Records are never mutated after insertion.
type DebugEvent struct {
	RequestID      string
	Endpoint       string
	Metadata       DebugMetadata
	RequestPayload json.RawMessage
	CreatedAt      time.Time
}
