// Package v1handler serves the v1 HTTP API: rendering a batch of URLs with a
// pattern, and listing the field catalog.
package v1handler

import (
	"context"
	"errors"
	"furl/internal/config"
	"furl/internal/runner"
	"furl/pkg/logger"
	"furl/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes limits request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 4 << 20

// Deps holds the collaborators of the handler.
type Deps struct {
	Runner runner.Runner
}

// Options configure request handling.
type Options struct {
	// MaxBodyBytes is the largest request body accepted.
	MaxBodyBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps, options: options}
}

// Routes returns the v1 router, to be mounted under /v1.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/render", h.Render)
	r.Get("/fields", h.Fields)

	return r
}

// ErrorResponse is the body and status of a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// NewError maps err to a response. Semantic kinds keep their code and
// message, anything else becomes an opaque internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind, ok := serrors.KindOf(err)
	if !ok || errors.Is(kind, serrors.ErrInternal) {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       serrors.ErrInternal.Error(),
			Message:    "internal error",
		}
	}

	msg := defaultMessage(kind)
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	return &ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Code:       kind.Error(),
		Message:    msg,
	}
}

func defaultMessage(kind serrors.Kind) string {
	switch {
	case errors.Is(kind, serrors.ErrNotAURL):
		return "not a URL"
	case errors.Is(kind, serrors.ErrInvalidDomain):
		return "invalid domain"
	default:
		return "bad request"
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
