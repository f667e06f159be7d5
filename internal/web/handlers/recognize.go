package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mzeman/facegate/internal/database"
	"github.com/mzeman/facegate/internal/detector"
	"github.com/mzeman/facegate/internal/face"
)

// RecognizeHandler handles face recognition against the registration log.
type RecognizeHandler struct {
	detector  detector.Detector
	people    database.PersonReader
	threshold float64
}

// NewRecognizeHandler creates a new recognition handler.
func NewRecognizeHandler(det detector.Detector, people database.PersonReader, threshold float64) *RecognizeHandler {
	return &RecognizeHandler{
		detector:  det,
		people:    people,
		threshold: threshold,
	}
}

type recognizeRequest struct {
	Image string `json:"image"` // base64, optionally with a data URL prefix
}

type recognizeResponse struct {
	Faces []face.MatchResult `json:"faces"`
	Count int                `json:"count"`
}

// Recognize identifies every face in an image. Unmatched faces come
// back named Unknown.
func (h *RecognizeHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	var req recognizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Image == "" {
		respondError(w, http.StatusBadRequest, "image is required")
		return
	}

	raw, img, err := decodeImagePayload(req.Image)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	boxes, err := h.detector.Detect(r.Context(), raw)
	if err != nil {
		log.Printf("Face detection failed: %v", err)
		respondError(w, http.StatusBadGateway, "face detection failed")
		return
	}

	people, err := h.people.All(r.Context())
	if err != nil {
		log.Printf("Failed to load registrations: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load registrations")
		return
	}

	results := face.Recognize(img, boxes, people, h.threshold)

	respondJSON(w, http.StatusOK, recognizeResponse{
		Faces: results,
		Count: len(results),
	})
}
