package v1handler

import (
	"net/http"

	"domainsync/pkg/domain"
	"domainsync/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// Enqueued is returned by the endpoints that schedule background work.
// Enqueued is false when an equivalent job was already waiting.
type Enqueued struct {
	Enqueued bool `json:"enqueued"`
}

// Registration is a cached registration as served by the API.
type Registration struct {
	domain.Registration

	Version int64 `json:"version"`
}

// ListDomains serves the cached registration snapshot.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Storage.Registrations(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out := make([]Registration, 0, len(rows))
	for _, row := range rows {
		out = append(out, Registration{Registration: row.Registration, Version: row.Version})
	}

	writeJSON(r.Context(), w, http.StatusOK, out)
}

// Reconcile schedules a reconciliation cycle.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	added, err := h.deps.Reconciler.Enqueue(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusAccepted, Enqueued{Enqueued: added})
}

func domainName(r *http.Request) (string, error) {
	name, err := domain.NormalizeName(chi.URLParam(r, "name"))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain name")
	}

	return name, nil
}

// PreviewContacts compares the expected and registered contacts of a domain
// without changing anything.
func (h *Handler) PreviewContacts(w http.ResponseWriter, r *http.Request) {
	name, err := domainName(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	preview, err := h.deps.Syncer.Preview(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, preview)
}

// SyncContacts schedules a contact sync for a domain.
func (h *Handler) SyncContacts(w http.ResponseWriter, r *http.Request) {
	name, err := domainName(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	added, err := h.deps.Syncer.Enqueue(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusAccepted, Enqueued{Enqueued: added})
}
