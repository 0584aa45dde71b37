package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eugenenazirov/bridgebot/internal/config"
	"github.com/eugenenazirov/bridgebot/internal/reload"
	"github.com/eugenenazirov/bridgebot/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Reloader re-resolves the configuration and stores it on success.
type Reloader interface {
	Reload(ctx context.Context) (config.Config, error)
}

// Handler exposes the active configuration over HTTP.
type Handler struct {
	storage  storage.Storage
	reloader Reloader

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, reloader Reloader, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage:  store,
		reloader: reloader,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	status := "ok"
	if _, err := h.storage.Current(); err != nil {
		status = "degraded"
	}
	resp := healthResponse{
		Status:         status,
		Timestamp:      h.clock(),
		ConfigLoadedAt: h.storage.UpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	_ = r
	cfg, err := h.storage.Current()
	if err != nil {
		if errors.Is(err, storage.ErrNotLoaded) {
			writeError(w, http.StatusServiceUnavailable, "Configuration unavailable", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	resp := configResponse{
		Config:    cfg.Redacted(),
		UpdatedAt: h.storage.UpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		writeError(w, http.StatusNotImplemented, "Reload unavailable", "configuration reload is not enabled")
		return
	}

	cfg, err := h.reloader.Reload(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, reload.ErrThrottled):
			writeError(w, http.StatusTooManyRequests, "Reload throttled", err.Error(), "wait before requesting another reload")
		case config.ErrorKind(err) != "unknown":
			writeJSON(w, http.StatusUnprocessableEntity, reloadErrorResponse{
				Error:   "Configuration rejected",
				Kind:    config.ErrorKind(err),
				Details: err.Error(),
			})
		default:
			writeInternalError(w, err)
		}
		return
	}

	resp := configResponse{
		Config:    cfg.Redacted(),
		UpdatedAt: h.storage.UpdatedAt(),
		Message:   "Configuration reloaded",
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type configResponse struct {
	Config    config.Config `json:"config"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Message   string        `json:"message,omitempty"`
}

type healthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	ConfigLoadedAt time.Time `json:"configLoadedAt"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type reloadErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
