package domain

import "context"

// CompletionAPI is the upstream chat-completions client.
type CompletionAPI interface {
	// Create sends a buffered completion request and returns the full response.
	Create(ctx context.Context, payload map[string]any) (*Completion, error)

	// CreateStream sends a streaming completion request and returns the chunk
	// iterator. Closing the stream aborts the upstream call.
	CreateStream(ctx context.Context, payload map[string]any) (ChunkStream, error)

	// Retrieve fetches a stored completion by id.
	Retrieve(ctx context.Context, id string) (*Completion, error)

	// Update replaces the metadata of a stored completion.
	Update(ctx context.Context, id string, metadata map[string]string) (*Completion, error)

	// Delete removes a stored completion and reports whether it was deleted.
	Delete(ctx context.Context, id string) (bool, error)

	// List pages through stored completions.
	List(ctx context.Context, filter ListFilter) (*Page, error)

	// ListMessages pages through the stored messages of a completion.
	ListMessages(ctx context.Context, id string, filter MessageFilter) (*Page, error)
}

// ChunkStream iterates over upstream stream chunks. The shape mirrors the SDK
// stream: Next blocks until a chunk is available, the iterator is exhausted,
// or the stream is closed.
type ChunkStream interface {
	Next() bool
	Current() StreamChunk
	Err() error
	Close() error
}

// Directory resolves organizations and checks membership.
type Directory interface {
	// Authorize resolves orgSlug and verifies userID belongs to it. Returns
	// ErrOrgNotFound or ErrNotMember on failure.
	Authorize(ctx context.Context, orgSlug, userID string) (*Organization, error)
}

// DebugRecorder appends debug events to the audit store. Implementations are
// best-effort: a failed append must never fail the request path.
type DebugRecorder interface {
	Record(ctx context.Context, event *DebugEvent)
}
