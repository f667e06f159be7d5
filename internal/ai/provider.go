// Package ai provides LLM providers for answering questions about the
// registration log, and embedding models for retrieval.
package ai

import "context"

// Provider answers a natural-language question grounded on registration
// documents.
type Provider interface {
	// Name returns the underlying model identifier.
	Name() string

	// Answer generates an answer to the question using the given
	// documents as context. The documents are plain-text registration
	// records, most relevant first.
	Answer(ctx context.Context, question string, documents []string) (string, error)
}

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	// EmbedText returns the embedding of the given text.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
