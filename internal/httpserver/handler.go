package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/prismaglow/chatproxy/internal/auth"
	"github.com/prismaglow/chatproxy/internal/config"
	"github.com/prismaglow/chatproxy/internal/domain"
	"github.com/prismaglow/chatproxy/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	gateway   *domain.GatewayService
	heartbeat int
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(gateway *domain.GatewayService, proxyCfg *config.ProxyConfig) *Handler {
	heartbeat := 0
	if proxyCfg != nil {
		heartbeat = proxyCfg.HeartbeatIntervalMs
	}

	return &Handler{
		gateway:   gateway,
		heartbeat: heartbeat,
	}
}

// CreateCompletion processes completion create requests, buffered or streaming.
func (h *Handler) CreateCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := auth.SubjectFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
		return
	}

	var req domain.ProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.OrgSlug == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "orgSlug is required"})
		return
	}

	if req.Payload == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "payload is required"})
		return
	}

	ctx = observability.WithOrgSlug(ctx, req.OrgSlug)

	logger := observability.FromContext(ctx)
	logger.Info("completion request received",
		observability.Bool("stream", req.Streaming()),
	)

	if req.Streaming() {
		h.streamCompletion(ctx, w, subject, &req)
		return
	}

	completion, err := h.gateway.Create(ctx, subject, &req)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"completion": completion})
}

// GetCompletion retrieves a stored completion by id.
func (h *Handler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := auth.SubjectFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
		return
	}

	req, ok := orgScopedRequest(w, r)
	if !ok {
		return
	}
	ctx = observability.WithOrgSlug(ctx, req.OrgSlug)

	completion, err := h.gateway.Retrieve(ctx, subject, req, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"completion": completion})
}

// UpdateCompletion replaces the metadata of a stored completion.
func (h *Handler) UpdateCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := auth.SubjectFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
		return
	}

	var body struct {
		OrgSlug  string            `json:"orgSlug"`
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if body.OrgSlug == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "orgSlug is required"})
		return
	}

	ctx = observability.WithOrgSlug(ctx, body.OrgSlug)
	req := &domain.ProxyRequest{OrgSlug: body.OrgSlug}

	completion, err := h.gateway.Update(ctx, subject, req, mux.Vars(r)["id"], body.Metadata)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"completion": completion})
}

// DeleteCompletion removes a stored completion.
func (h *Handler) DeleteCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := auth.SubjectFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
		return
	}

	req, ok := orgScopedRequest(w, r)
	if !ok {
		return
	}
	ctx = observability.WithOrgSlug(ctx, req.OrgSlug)

	deleted, err := h.gateway.Delete(ctx, subject, req, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

// ListCompletions pages through stored completions.
func (h *Handler) ListCompletions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := auth.SubjectFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
		return
	}

	req, ok := orgScopedRequest(w, r)
	if !ok {
		return
	}
	ctx = observability.WithOrgSlug(ctx, req.OrgSlug)

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	page, err := h.gateway.List(ctx, subject, req, domain.ListFilter{
		After: r.URL.Query().Get("after"),
		Limit: limit,
		Model: r.URL.Query().Get("model"),
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// ListCompletionMessages pages through the stored messages of a completion.
func (h *Handler) ListCompletionMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject, ok := auth.SubjectFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session"})
		return
	}

	req, ok := orgScopedRequest(w, r)
	if !ok {
		return
	}
	ctx = observability.WithOrgSlug(ctx, req.OrgSlug)

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	page, err := h.gateway.ListMessages(ctx, subject, req, mux.Vars(r)["id"], domain.MessageFilter{
		After: r.URL.Query().Get("after"),
		Limit: limit,
		Order: r.URL.Query().Get("order"),
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// orgScopedRequest builds the request envelope for the read-side operations,
// which carry only the organization slug as a query parameter.
func orgScopedRequest(w http.ResponseWriter, r *http.Request) (*domain.ProxyRequest, bool) {
	orgSlug := r.URL.Query().Get("orgSlug")
	if orgSlug == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "orgSlug is required"})
		return nil, false
	}

	return &domain.ProxyRequest{OrgSlug: orgSlug}, true
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		return 0, false
	}

	return limit, true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrOrgNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "organization not found"})
	case errors.Is(err, domain.ErrNotMember):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.As(err, &upstream):
		status := upstream.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		message := upstream.Message
		if message == "" {
			message = "upstream request failed"
		}
		logger.Error("upstream call failed", observability.Error(err))
		writeJSON(w, status, map[string]string{"error": message})
	default:
		logger.Error("request failed", observability.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
