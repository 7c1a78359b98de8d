package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/observability"
)

// sseEvent is one framed event on the wire. The terminal "done" event carries
// no data; chunk events carry the upstream chunk verbatim.
type sseEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// streamCompletion owns the client connection for the lifetime of one
// streaming exchange. The debug event for the call is recorded as soon as the
// stream id is known (before the first chunk reaches the client); streams
// that never yield a chunk still record one with a synthesized id.
func (h *Handler) streamCompletion(ctx context.Context, w http.ResponseWriter, subject string, req *domain.ProxyRequest) {
	logger := observability.FromContext(ctx)
	logger.Info("stream request started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := h.gateway.OpenStream(ctx, subject, req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		_ = stream.Close()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming not supported"})
		return
	}

	// The stream outlives the server-wide write deadline; clear it for this
	// response. Writers without deadline support (tests) are fine as-is.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("could not clear write deadline", observability.Error(err))
	}

	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	recorded := false
	h.relay(ctx, w, flusher, stream, func(streamID string) {
		h.gateway.RecordStreamCall(ctx, req, streamID)
		recorded = true
	})

	if !recorded {
		h.gateway.RecordStreamCall(ctx, req, "")
	}
}

// relay drives the nested loop over upstream chunks, multiplexing chunk
// arrival, heartbeats, and client disconnect. It always emits exactly one
// terminal metrics line before returning.
func (h *Handler) relay(
	ctx context.Context,
	w http.ResponseWriter,
	flusher http.Flusher,
	stream domain.ChunkStream,
	onFirstChunk func(streamID string),
) {
	logger := observability.FromContext(ctx)
	start := time.Now()

	var (
		chunkCount       int
		timeToFirstChunk time.Duration
	)
	status := observability.StreamCompleted

	closeUpstream := sync.OnceFunc(func() { _ = stream.Close() })
	defer closeUpstream()

	// Pump upstream chunks into a channel so the write loop can select
	// between chunk arrival and cancellation. The pump stops as soon as the
	// context is canceled; closing the stream unblocks a pending Next.
	events := make(chan domain.StreamChunk)
	errc := make(chan error, 1)
	go func() {
		defer close(events)
		for stream.Next() {
			select {
			case events <- stream.Current():
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			errc <- err
		}
	}()

	heartbeatInterval := time.Duration(h.heartbeat) * time.Millisecond
	var heartbeatC <-chan time.Time
	if heartbeatInterval > 0 {
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()
		heartbeatC = ticker.C
	}

loop:
	for {
		select {
		case <-ctx.Done():
			// Client disconnected: abort upstream immediately and stop
			// writing. No terminal frames are sent on this path.
			status = observability.StreamClientDisconnect
			closeUpstream()
			logger.Info("client disconnected mid-stream")
			break loop

		case <-heartbeatC:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()

		case chunk, open := <-events:
			if !open {
				select {
				case err := <-errc:
					status = observability.StreamError
					logger.Error("upstream stream failed", observability.Error(err))
					fmt.Fprintf(w, "event: error\ndata: %s\n\n", err.Error())
					flusher.Flush()
				default:
					writeDoneFrames(w, flusher)
					logger.Info("stream completed")
				}
				break loop
			}

			if chunkCount == 0 {
				timeToFirstChunk = time.Since(start)
				onFirstChunk(chunk.ID)
			}

			frame, err := json.Marshal(sseEvent{Type: "chunk", Data: chunk.Raw})
			if err != nil {
				status = observability.StreamError
				logger.Error("failed to encode chunk frame", observability.Error(err))
				break loop
			}

			fmt.Fprintf(w, "data: %s\n\n", frame)
			flusher.Flush()
			chunkCount++
		}
	}

	observability.LogStreamMetrics(ctx, observability.StreamMetrics{
		Status:            status,
		ChunkCount:        chunkCount,
		Duration:          time.Since(start),
		TimeToFirstChunk:  timeToFirstChunk,
		HeartbeatInterval: heartbeatInterval,
	})
}

// writeDoneFrames emits the two terminal markers of a clean completion: the
// structured done event followed by the literal [DONE] sentinel, in that
// order and only on this path.
func writeDoneFrames(w http.ResponseWriter, flusher http.Flusher) {
	frame, _ := json.Marshal(sseEvent{Type: "done"})
	fmt.Fprintf(w, "data: %s\n\n", frame)
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
