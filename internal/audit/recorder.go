// Package audit persists debug events for every upstream call. Appends are
// best-effort: the audit trail must never fail the request path it describes.
package audit

import (
	"context"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/observability"
)

// EventStore appends debug events to durable storage.
type EventStore interface {
	Append(ctx context.Context, event *domain.DebugEvent) error
}

// Recorder implements domain.DebugRecorder over an EventStore.
type Recorder struct {
	store   EventStore
	enabled bool
}

// NewRecorder creates a new recorder (DI constructor). When disabled the
// recorder logs the event but skips the store append.
func NewRecorder(store EventStore, enabled bool) *Recorder {
	return &Recorder{
		store:   store,
		enabled: enabled,
	}
}

// Record appends one debug event. Store failures are swallowed with local
// diagnostics so the caller's request flow is never disturbed.
func (r *Recorder) Record(ctx context.Context, event *domain.DebugEvent) {
	if event == nil {
		return
	}

	logger := observability.FromContext(ctx)
	logger.Debug("recording debug event",
		observability.String("request_id", event.RequestID),
		observability.String("endpoint", event.Endpoint),
	)

	if !r.enabled || r.store == nil {
		return
	}

	if err := r.store.Append(ctx, event); err != nil {
		logger.Warn("failed to append debug event",
			observability.String("request_id", event.RequestID),
			observability.String("endpoint", event.Endpoint),
			observability.Error(err),
		)
	}
}
