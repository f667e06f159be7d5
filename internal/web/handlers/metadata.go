package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/mzeman/facegate/internal/database"
)

// MetadataHandler exposes read-only metadata about the registration log.
type MetadataHandler struct {
	people database.PersonReader
}

// NewMetadataHandler creates a new metadata handler.
func NewMetadataHandler(people database.PersonReader) *MetadataHandler {
	return &MetadataHandler{people: people}
}

type lastRegistrationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Last returns the most recent registration.
func (h *MetadataHandler) Last(w http.ResponseWriter, r *http.Request) {
	last, err := h.people.Last(r.Context())
	if err != nil {
		log.Printf("Failed to load last registration: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load last registration")
		return
	}
	if last == nil {
		respondError(w, http.StatusNotFound, "no registrations yet")
		return
	}

	respondJSON(w, http.StatusOK, lastRegistrationResponse{
		ID:           last.ID.String(),
		Name:         last.Name,
		RegisteredAt: last.RegisteredAt,
	})
}

// Count returns the total number of registrations.
func (h *MetadataHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.people.Count(r.Context())
	if err != nil {
		log.Printf("Failed to count registrations: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to count registrations")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}
