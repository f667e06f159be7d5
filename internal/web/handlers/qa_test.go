package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mzeman/facegate/internal/qa"
)

// mockQAService is a canned implementation of QAService.
type mockQAService struct {
	ingestResult *qa.IngestResult
	ingestErr    error
	answer       *qa.Answer
	queryErr     error
	questions    []string
}

func (m *mockQAService) Ingest(ctx context.Context) (*qa.IngestResult, error) {
	if m.ingestErr != nil {
		return nil, m.ingestErr
	}
	return m.ingestResult, nil
}

func (m *mockQAService) Query(ctx context.Context, question string) (*qa.Answer, error) {
	m.questions = append(m.questions, question)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.answer, nil
}

func TestQAIngest(t *testing.T) {
	service := &mockQAService{
		ingestResult: &qa.IngestResult{Documents: 5, Indexed: 5},
	}
	handler := NewQAHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qa/ingest", nil)
	recorder := httptest.NewRecorder()

	handler.Ingest(recorder, req)
	assertStatusCode(t, recorder, http.StatusOK)

	var resp qa.IngestResult
	decodeJSON(t, recorder, &resp)
	if resp.Documents != 5 || resp.Indexed != 5 {
		t.Errorf("result = %+v; want 5 documents, 5 indexed", resp)
	}
}

func TestQAIngestError(t *testing.T) {
	service := &mockQAService{ingestErr: errors.New("embedding quota")}
	handler := NewQAHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qa/ingest", nil)
	recorder := httptest.NewRecorder()

	handler.Ingest(recorder, req)
	assertStatusCode(t, recorder, http.StatusInternalServerError)
}

func TestQAQuery(t *testing.T) {
	service := &mockQAService{
		answer: &qa.Answer{Text: "alice registered last", SourcesCount: 2, Backend: qa.BackendVector},
	}
	handler := NewQAHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qa/query",
		jsonBody(t, map[string]string{"question": "who registered last?"}))
	recorder := httptest.NewRecorder()

	handler.Query(recorder, req)
	assertStatusCode(t, recorder, http.StatusOK)

	var resp qa.Answer
	decodeJSON(t, recorder, &resp)
	if resp.Text != "alice registered last" {
		t.Errorf("Text = %q; want the service answer", resp.Text)
	}
	if resp.Backend != qa.BackendVector {
		t.Errorf("Backend = %q; want %q", resp.Backend, qa.BackendVector)
	}

	if len(service.questions) != 1 || service.questions[0] != "who registered last?" {
		t.Errorf("service received %v; want the question", service.questions)
	}
}

func TestQAQueryValidation(t *testing.T) {
	handler := NewQAHandler(&mockQAService{})

	tests := []struct {
		name string
		body string
	}{
		{"InvalidJSON", "not json"},
		{"MissingQuestion", `{}`},
		{"EmptyQuestion", `{"question": ""}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/qa/query", strings.NewReader(tc.body))
			recorder := httptest.NewRecorder()
			handler.Query(recorder, req)
			assertStatusCode(t, recorder, http.StatusBadRequest)
		})
	}
}

func TestQAQueryError(t *testing.T) {
	service := &mockQAService{queryErr: errors.New("store unavailable")}
	handler := NewQAHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qa/query",
		jsonBody(t, map[string]string{"question": "how many?"}))
	recorder := httptest.NewRecorder()

	handler.Query(recorder, req)
	assertStatusCode(t, recorder, http.StatusInternalServerError)
}
