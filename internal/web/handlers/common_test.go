package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dbmock "github.com/mzeman/facegate/internal/database/mock"
)

func TestRespondJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondJSON(recorder, http.StatusOK, map[string]string{"status": "ok"})

	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", contentType)
	}
	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d; want %d", recorder.Code, http.StatusOK)
	}
}

func TestRespondJSONNilData(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondJSON(recorder, http.StatusNoContent, nil)

	if recorder.Body.Len() != 0 {
		t.Errorf("expected empty body for nil data, got %q", recorder.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondError(recorder, http.StatusBadRequest, "something broke")

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "something broke")
}

func TestSanitizeForLog(t *testing.T) {
	input := "line1\nline2\rline3"
	if got := sanitizeForLog(input); got != "line1line2line3" {
		t.Errorf("sanitizeForLog(%q) = %q", input, got)
	}
}

func TestDecodeImagePayload(t *testing.T) {
	payload := testImagePayload(t, testImage(16, 16))

	raw, img, err := decodeImagePayload(payload)
	if err != nil {
		t.Fatalf("decodeImagePayload failed: %v", err)
	}
	if len(raw) == 0 {
		t.Error("expected raw bytes")
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded bounds = %v; want 16x16", img.Bounds())
	}

	// Same payload with a data URL prefix.
	_, img, err = decodeImagePayload("data:image/png;base64," + payload)
	if err != nil {
		t.Fatalf("decodeImagePayload with prefix failed: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Error("prefix variant should decode the same image")
	}
}

func TestDecodeImagePayloadErrors(t *testing.T) {
	if _, _, err := decodeImagePayload("!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, _, err := decodeImagePayload("aGVsbG8="); err == nil {
		t.Error("expected error for non-image payload")
	}
}

func TestHealth(t *testing.T) {
	handler := NewHealthHandler(dbmock.NewMockPersonStore(), "gemini-2.5-flash")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	handler.Health(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp map[string]string
	decodeJSON(t, recorder, &resp)
	if resp["status"] != "ok" || resp["database"] != "ok" {
		t.Errorf("response = %v; want ok status", resp)
	}
	if resp["llm"] != "gemini-2.5-flash" {
		t.Errorf("llm = %q; want the provider name", resp["llm"])
	}
}

func TestHealthDegraded(t *testing.T) {
	people := dbmock.NewMockPersonStore()
	people.CountError = errors.New("connection refused")
	handler := NewHealthHandler(people, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	handler.Health(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp map[string]string
	decodeJSON(t, recorder, &resp)
	if resp["status"] != "degraded" {
		t.Errorf("status = %q; want degraded", resp["status"])
	}
	if resp["llm"] != "disabled" {
		t.Errorf("llm = %q; want disabled", resp["llm"])
	}
}
