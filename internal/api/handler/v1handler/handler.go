// Package v1handler implements the version 1 admin API: the cached
// registration snapshot, reconciliation and contact sync triggers, and the
// contact lookup.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"domainsync/internal/contactsync"
	"domainsync/internal/reconciler"
	"domainsync/pkg/logger"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps the size of accepted request bodies.
const maxBodyBytes = 64 << 10

// Deps are the services backing the API.
type Deps struct {
	Reconciler reconciler.Reconciler
	Syncer     contactsync.Syncer
	Storage    storage.Storage
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 routes, relative to the API prefix.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/domains", h.ListDomains)
	r.Post("/reconcile", h.Reconcile)
	r.Route("/domains/{name}/contacts", func(r chi.Router) {
		r.Get("/", h.PreviewContacts)
		r.Post("/sync", h.SyncContacts)
	})
	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.ListContacts)
		r.Get("/{key}", h.GetContact)
		r.Put("/{key}", h.PutContact)
		r.Delete("/{key}", h.DeleteContact)
	})

	return r
}

// Error is the body of every failed response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an Error with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = map[serrors.Kind]kindStatus{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "timeout"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to an ErrorResponse. Semantic errors keep their own
// message; anything else is logged and reported as an internal error.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if ks, ok := kindStatuses[kind]; ok {
		msg := ks.message
		var sErr *serrors.Error
		if errors.As(err, &sErr) && sErr.Message() != "" {
			msg = sErr.Message()
		}

		return &ErrorResponse{
			StatusCode: ks.status,
			Response:   Error{Code: kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
