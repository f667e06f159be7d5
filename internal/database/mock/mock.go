// Package mock provides mock implementations of database interfaces for testing.
package mock

import (
	"context"
	"sync"

	"github.com/mzeman/facegate/internal/database"
)

// MockPersonStore is an in-memory implementation of database.PersonReader
// and database.PersonWriter.
type MockPersonStore struct {
	mu     sync.RWMutex
	people []database.Person

	// Error injection
	AppendError error
	AllError    error
	CountError  error
	LastError   error
}

// NewMockPersonStore creates a new mock person store.
func NewMockPersonStore() *MockPersonStore {
	return &MockPersonStore{}
}

// Append adds a registration record to the mock store.
func (m *MockPersonStore) Append(ctx context.Context, person *database.Person) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.people = append(m.people, *person)
	return nil
}

// All returns the stored people in insertion order.
func (m *MockPersonStore) All(ctx context.Context) ([]database.Person, error) {
	if m.AllError != nil {
		return nil, m.AllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot := make([]database.Person, len(m.people))
	copy(snapshot, m.people)
	return snapshot, nil
}

// Count returns the number of stored people.
func (m *MockPersonStore) Count(ctx context.Context) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.people), nil
}

// Last returns the most recently appended person, or nil when empty.
func (m *MockPersonStore) Last(ctx context.Context) (*database.Person, error) {
	if m.LastError != nil {
		return nil, m.LastError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.people) == 0 {
		return nil, nil
	}
	last := m.people[len(m.people)-1]
	return &last, nil
}

// MockDocumentStore is an in-memory implementation of database.DocumentStore.
type MockDocumentStore struct {
	mu   sync.RWMutex
	docs []database.Document

	// Error injection
	ReplaceError error
	AllError     error
	SearchError  error
	CountError   error
}

// NewMockDocumentStore creates a new mock document store.
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{}
}

// ReplaceAll swaps the stored documents.
func (m *MockDocumentStore) ReplaceAll(ctx context.Context, docs []database.Document) error {
	if m.ReplaceError != nil {
		return m.ReplaceError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make([]database.Document, len(docs))
	copy(m.docs, docs)
	return nil
}

// All returns the stored documents.
func (m *MockDocumentStore) All(ctx context.Context) ([]database.Document, error) {
	if m.AllError != nil {
		return nil, m.AllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot := make([]database.Document, len(m.docs))
	copy(snapshot, m.docs)
	return snapshot, nil
}

// SearchSimilar returns up to limit stored documents with a mock distance.
func (m *MockDocumentStore) SearchSimilar(
	ctx context.Context, embedding []float32, limit int,
) ([]database.Document, []float64, error) {
	if m.SearchError != nil {
		return nil, nil, m.SearchError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []database.Document
	var distances []float64
	for i := range m.docs {
		if len(docs) >= limit {
			break
		}
		docs = append(docs, m.docs[i])
		distances = append(distances, 0.1) // Mock distance
	}
	return docs, distances, nil
}

// Count returns the number of stored documents.
func (m *MockDocumentStore) Count(ctx context.Context) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs), nil
}
