package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzeman/facegate/internal/database"
	"github.com/mzeman/facegate/internal/face"
)

// PersonRepository provides PostgreSQL-backed storage for the
// registration log.
type PersonRepository struct {
	pool *Pool
}

// NewPersonRepository creates a new PostgreSQL person repository.
func NewPersonRepository(pool *Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

// Append inserts a new registration record. Records are immutable once
// written.
func (r *PersonRepository) Append(ctx context.Context, person *database.Person) error {
	query := `
		INSERT INTO people (id, name, descriptor, registered_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		person.ID,
		person.Name,
		face.EncodeDescriptor(person.Descriptor),
		person.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// All returns a snapshot of every registered person in registration order.
func (r *PersonRepository) All(ctx context.Context) ([]database.Person, error) {
	query := `
		SELECT id, name, descriptor, registered_at
		FROM people
		ORDER BY registered_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	return scanPeople(rows)
}

// Count returns the total number of registered people.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM people").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	return count, nil
}

// Last returns the most recently registered person, or nil when the log
// is empty.
func (r *PersonRepository) Last(ctx context.Context) (*database.Person, error) {
	query := `
		SELECT id, name, descriptor, registered_at
		FROM people
		ORDER BY registered_at DESC, id DESC
		LIMIT 1
	`

	person, err := scanPerson(r.pool.QueryRow(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last person: %w", err)
	}
	return person, nil
}

// scanPerson reads a single person row including its raw descriptor.
func scanPerson(row *sql.Row) (*database.Person, error) {
	var person database.Person
	var raw []byte

	if err := row.Scan(&person.ID, &person.Name, &raw, &person.RegisteredAt); err != nil {
		return nil, err
	}

	desc, err := face.DecodeDescriptor(raw)
	if err != nil {
		return nil, fmt.Errorf("decode descriptor for %s: %w", person.ID, err)
	}
	person.Descriptor = desc
	return &person, nil
}

// scanPeople reads all person rows from a result set.
func scanPeople(rows *sql.Rows) ([]database.Person, error) {
	var people []database.Person
	for rows.Next() {
		var person database.Person
		var raw []byte

		if err := rows.Scan(&person.ID, &person.Name, &raw, &person.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}

		desc, err := face.DecodeDescriptor(raw)
		if err != nil {
			return nil, fmt.Errorf("decode descriptor for %s: %w", person.ID, err)
		}
		person.Descriptor = desc
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}
