// Package qa answers natural-language questions about the registration
// log. It builds a retrieval index over registration records and falls
// back through progressively simpler answering strategies when the LLM
// or embedding backends are unavailable.
package qa

import (
	"fmt"
	"time"

	"github.com/mzeman/facegate/internal/database"
)

// BuildDocuments converts registration records into retrieval documents.
// One document per registration, in registration order.
func BuildDocuments(people []database.Person) []database.Document {
	docs := make([]database.Document, 0, len(people))
	for i := range people {
		person := &people[i]
		docs = append(docs, database.Document{
			PersonID:     person.ID,
			Name:         person.Name,
			Text:         formatRecord(person),
			RegisteredAt: person.RegisteredAt,
		})
	}
	return docs
}

func formatRecord(person *database.Person) string {
	return fmt.Sprintf("ID: %s | Name: %s | Registered: %s",
		person.ID, person.Name, person.RegisteredAt.UTC().Format(time.RFC3339))
}
