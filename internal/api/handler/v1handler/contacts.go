package v1handler

import (
	"net/http"

	"domainsync/pkg/domain"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"

	"github.com/go-chi/chi/v5"
)

func contactKey(r *http.Request) (string, error) {
	key := chi.URLParam(r, "key")
	if key == storage.DefaultContactKey {
		return key, nil
	}

	name, err := domain.NormalizeName(key)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err,
			"contact key must be a domain name or %q", storage.DefaultContactKey)
	}

	return name, nil
}

// ListContacts serves every configured contact.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	records, err := h.deps.Storage.Contacts(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if records == nil {
		records = []storage.ContactRecord{}
	}

	writeJSON(r.Context(), w, http.StatusOK, records)
}

// GetContact serves the contact stored under a key.
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	key, err := contactKey(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	contact, err := h.deps.Storage.ContactByKey(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if contact == nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "contact not found"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, storage.ContactRecord{Key: key, Contact: *contact})
}

// PutContact stores the contact from the request body under a key.
func (h *Handler) PutContact(w http.ResponseWriter, r *http.Request) {
	key, err := contactKey(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var contact domain.Contact
	if err := decodeJSON(r, &contact); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := contact.Validate(); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "%s", err.Error()))

		return
	}

	if err := h.deps.Storage.UpsertContact(r.Context(), key, contact); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, storage.ContactRecord{Key: key, Contact: contact})
}

// DeleteContact removes the contact stored under a key.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	key, err := contactKey(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	deleted, err := h.deps.Storage.DeleteContact(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if !deleted {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "contact not found"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
