package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/mzeman/facegate/internal/qa"
)

// QAService answers questions about the registration log.
type QAService interface {
	Ingest(ctx context.Context) (*qa.IngestResult, error)
	Query(ctx context.Context, question string) (*qa.Answer, error)
}

// QAHandler handles question-answering endpoints.
type QAHandler struct {
	service QAService
}

// NewQAHandler creates a new Q&A handler.
func NewQAHandler(service QAService) *QAHandler {
	return &QAHandler{service: service}
}

type queryRequest struct {
	Question string `json:"question"`
}

// Ingest rebuilds the retrieval index from the registration log.
func (h *QAHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Ingest(r.Context())
	if err != nil {
		log.Printf("Index rebuild failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to rebuild index")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Query answers a question about the registration log.
func (h *QAHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := h.service.Query(r.Context(), req.Question)
	if err != nil {
		log.Printf("Query failed for %q: %v", sanitizeForLog(req.Question), err)
		respondError(w, http.StatusInternalServerError, "failed to answer question")
		return
	}

	respondJSON(w, http.StatusOK, answer)
}
