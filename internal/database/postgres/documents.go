package postgres

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/mzeman/facegate/internal/database"
)

// DocumentRepository provides PostgreSQL-backed storage for the Q&A
// retrieval index, using pgvector for similarity search.
type DocumentRepository struct {
	pool *Pool
}

// NewDocumentRepository creates a new PostgreSQL document repository.
func NewDocumentRepository(pool *Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// ReplaceAll atomically swaps the stored index for a freshly built one.
// Ingest always rebuilds from the current registration snapshot, so a
// full replace keeps the index consistent with the log.
func (r *DocumentRepository) ReplaceAll(ctx context.Context, docs []database.Document) error {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear documents: %w", err)
	}

	insert := `
		INSERT INTO documents (person_id, name, content, embedding, registered_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range docs {
		doc := &docs[i]
		var embedding any
		if len(doc.Embedding) > 0 {
			embedding = pgvector.NewVector(doc.Embedding)
		}
		if _, err := tx.ExecContext(ctx, insert,
			doc.PersonID, doc.Name, doc.Text, embedding, doc.RegisteredAt,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert document for %s: %w", doc.PersonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit document replace: %w", err)
	}
	return nil
}

// All returns every stored document in registration order.
func (r *DocumentRepository) All(ctx context.Context) ([]database.Document, error) {
	query := `
		SELECT id, person_id, name, content, embedding, registered_at, created_at
		FROM documents
		ORDER BY registered_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []database.Document
	for rows.Next() {
		var doc database.Document
		var vec *pgvector.Vector

		if err := rows.Scan(&doc.ID, &doc.PersonID, &doc.Name, &doc.Text,
			&vec, &doc.RegisteredAt, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if vec != nil {
			doc.Embedding = vec.Slice()
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

// SearchSimilar returns up to limit documents closest to the query
// embedding by cosine distance, together with the distances.
func (r *DocumentRepository) SearchSimilar(
	ctx context.Context, embedding []float32, limit int,
) ([]database.Document, []float64, error) {
	query := `
		SELECT id, person_id, name, content, registered_at, created_at,
		       embedding <=> $1 AS distance
		FROM documents
		WHERE embedding IS NOT NULL
		ORDER BY distance
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, nil, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	var docs []database.Document
	var distances []float64
	for rows.Next() {
		var doc database.Document
		var distance float64

		if err := rows.Scan(&doc.ID, &doc.PersonID, &doc.Name, &doc.Text,
			&doc.RegisteredAt, &doc.CreatedAt, &distance); err != nil {
			return nil, nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
		distances = append(distances, distance)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, distances, nil
}

// Count returns the number of indexed documents.
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM documents").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}
