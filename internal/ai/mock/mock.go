// Package mock provides mock AI providers for testing.
package mock

import "context"

// MockProvider is a canned-answer implementation of ai.Provider.
type MockProvider struct {
	Response  string
	Err       error
	Questions []string
	Documents [][]string
}

// NewMockProvider creates a mock provider returning the given answer.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Response: response}
}

func (m *MockProvider) Name() string {
	return "mock-model"
}

// Answer records the call and returns the canned response.
func (m *MockProvider) Answer(ctx context.Context, question string, documents []string) (string, error) {
	m.Questions = append(m.Questions, question)
	m.Documents = append(m.Documents, documents)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockEmbedder is a deterministic implementation of ai.Embedder.
type MockEmbedder struct {
	Dim   int
	Err   error
	Texts []string
}

// NewMockEmbedder creates a mock embedder producing vectors of the
// given dimension.
func NewMockEmbedder(dim int) *MockEmbedder {
	return &MockEmbedder{Dim: dim}
}

// EmbedText records the call and returns a deterministic vector derived
// from the text length.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.Texts = append(m.Texts, text)
	if m.Err != nil {
		return nil, m.Err
	}
	vec := make([]float32, m.Dim)
	vec[len(text)%m.Dim] = 1
	return vec, nil
}
