package database

import (
	"time"

	"github.com/google/uuid"
)

// Person is a single registration record. Records are append-only: they
// are created once at registration time and never updated or deleted.
type Person struct {
	ID           uuid.UUID
	Name         string
	Descriptor   []float32 // unit-normalized face descriptor, 16384 values
	RegisteredAt time.Time
}

// Document is one entry of the question-answering retrieval index. Each
// document summarizes a registration record as free text plus its
// embedding vector.
type Document struct {
	ID           int64
	PersonID     uuid.UUID
	Name         string
	Text         string
	Embedding    []float32
	RegisteredAt time.Time
	CreatedAt    time.Time
}
