// Package handlers implements the HTTP API endpoints.
package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"

	"github.com/mzeman/facegate/internal/database"
)

// errInvalidRequestBody is a shared error message for invalid JSON request bodies.
const errInvalidRequestBody = "invalid request body"

// errNoFaceDetected is returned when a registration image contains no face.
const errNoFaceDetected = "no_face_detected"

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeImagePayload decodes a base64 image payload, with or without a
// data URL prefix. It returns both the raw bytes (for the detector,
// which takes the original encoding) and the decoded pixels.
func decodeImagePayload(payload string) ([]byte, image.Image, error) {
	if idx := strings.Index(payload, ";base64,"); strings.HasPrefix(payload, "data:") && idx != -1 {
		payload = payload[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base64 image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported image format: %w", err)
	}
	return raw, img, nil
}

// HealthHandler reports service health and collaborator availability.
type HealthHandler struct {
	people       database.PersonReader
	providerName string
}

// NewHealthHandler creates a new health handler. providerName may be
// empty when no LLM is configured.
func NewHealthHandler(people database.PersonReader, providerName string) *HealthHandler {
	return &HealthHandler{people: people, providerName: providerName}
}

// Health handles the health check endpoint.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := map[string]string{
		"status":   "ok",
		"database": "ok",
		"llm":      "disabled",
	}
	if _, err := h.people.Count(ctx); err != nil {
		resp["status"] = "degraded"
		resp["database"] = "unavailable"
	}
	if h.providerName != "" {
		resp["llm"] = h.providerName
	}

	respondJSON(w, http.StatusOK, resp)
}
