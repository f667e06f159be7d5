package database

import "context"

// PersonReader provides read access to the registration log. All and
// Last observe records in registration order (registered_at, then id),
// matching the order people were appended.
type PersonReader interface {
	// All returns a full snapshot of the registration log.
	All(ctx context.Context) ([]Person, error)
	// Count returns the number of registered people.
	Count(ctx context.Context) (int, error)
	// Last returns the most recently registered person, or nil when the
	// log is empty.
	Last(ctx context.Context) (*Person, error)
}

// PersonWriter appends registration records. The log is append-only;
// there is deliberately no update or delete.
type PersonWriter interface {
	Append(ctx context.Context, person *Person) error
}

// DocumentStore persists the question-answering retrieval index built
// from the registration log.
type DocumentStore interface {
	// ReplaceAll atomically swaps the stored index for a freshly built one.
	ReplaceAll(ctx context.Context, docs []Document) error
	// All returns every stored document in registration order.
	All(ctx context.Context) ([]Document, error)
	// SearchSimilar returns up to limit documents closest to the query
	// embedding by cosine distance, together with the distances.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]Document, []float64, error)
	// Count returns the number of indexed documents.
	Count(ctx context.Context) (int, error)
}
