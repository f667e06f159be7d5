package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mzeman/facegate/internal/database"
	"github.com/mzeman/facegate/internal/detector"
	"github.com/mzeman/facegate/internal/face"
)

// RegisterHandler handles face registration.
type RegisterHandler struct {
	detector detector.Detector
	people   database.PersonWriter

	// onRegister runs in the background after a successful registration.
	// Used to refresh the Q&A index. May be nil.
	onRegister func()
}

// NewRegisterHandler creates a new registration handler.
func NewRegisterHandler(det detector.Detector, people database.PersonWriter, onRegister func()) *RegisterHandler {
	return &RegisterHandler{
		detector:   det,
		people:     people,
		onRegister: onRegister,
	}
}

type registerRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"` // base64, optionally with a data URL prefix
}

type registerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Register registers a person from an image. Only the first detected
// face is used; additional faces in the image are ignored.
func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
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
	if len(boxes) == 0 {
		respondError(w, http.StatusUnprocessableEntity, errNoFaceDetected)
		return
	}

	descriptor := face.Extract(face.CropRegion(img, boxes[0]))

	person := &database.Person{
		ID:           uuid.New(),
		Name:         req.Name,
		Descriptor:   descriptor,
		RegisteredAt: time.Now().UTC(),
	}

	if err := h.people.Append(r.Context(), person); err != nil {
		log.Printf("Failed to store registration for %s: %v", sanitizeForLog(req.Name), err)
		respondError(w, http.StatusInternalServerError, "failed to store registration")
		return
	}

	// Registration must not wait for the index refresh.
	if h.onRegister != nil {
		go h.onRegister()
	}

	respondJSON(w, http.StatusCreated, registerResponse{
		ID:           person.ID.String(),
		Name:         person.Name,
		RegisteredAt: person.RegisteredAt,
	})
}
