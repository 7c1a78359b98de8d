package observability

import (
	"context"
	"time"
)

// StreamMetricsMessage is the log message carrying the terminal metrics of one
// streaming exchange. Operational dashboards key on this exact string.
const StreamMetricsMessage = "openai.chat_completion_stream_metrics"

// StreamStatus describes how a streaming exchange terminated.
type StreamStatus string

const (
	// StreamCompleted means the upstream iterator was exhausted normally.
	StreamCompleted StreamStatus = "completed"

	// StreamClientDisconnect means the client closed the connection mid-stream.
	StreamClientDisconnect StreamStatus = "client_disconnect"

	// StreamError means the upstream iterator failed before completing.
	StreamError StreamStatus = "error"
)

// StreamMetrics summarizes one streaming exchange. Exactly one metrics line is
// emitted per stream, regardless of how it terminated.
type StreamMetrics struct {
	Status            StreamStatus
	ChunkCount        int
	Duration          time.Duration
	TimeToFirstChunk  time.Duration
	HeartbeatInterval time.Duration
}

// LogStreamMetrics emits the terminal metrics line for a streaming exchange.
func LogStreamMetrics(ctx context.Context, m StreamMetrics) {
	FromContext(ctx).Info(StreamMetricsMessage,
		String("status", string(m.Status)),
		Int("chunkCount", m.ChunkCount),
		Int64("durationMs", m.Duration.Milliseconds()),
		Int64("timeToFirstChunkMs", m.TimeToFirstChunk.Milliseconds()),
		Int64("heartbeatIntervalMs", m.HeartbeatInterval.Milliseconds()),
	)
}
