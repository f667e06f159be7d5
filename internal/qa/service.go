package qa

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mzeman/facegate/internal/ai"
	"github.com/mzeman/facegate/internal/database"
)

// Answer backends, most capable first. Query degrades through them when
// a backend is unavailable or fails.
const (
	BackendVector = "vector+llm"
	BackendLLM    = "llm"
	BackendLocal  = "local"
)

// llmContextSize limits how many recent records the plain LLM fallback
// sees when no retrieval index is available.
const llmContextSize = 10

// Answer is the result of a question over the registration log.
type Answer struct {
	Text         string `json:"answer"`
	SourcesCount int    `json:"sources_count"`
	Backend      string `json:"backend"`
}

// IngestResult summarizes an index rebuild.
type IngestResult struct {
	Documents int  `json:"documents"`
	Indexed   int  `json:"indexed"`
	Skipped   bool `json:"embedding_skipped"`
}

// Service answers questions about the registration log.
type Service struct {
	people        database.PersonReader
	docs          database.DocumentStore
	index         *Index
	provider      ai.Provider
	embedder      ai.Embedder
	retrievalSize int
}

// NewService creates a question-answering service. Both provider and
// embedder may be nil; the service degrades to simpler backends.
func NewService(
	people database.PersonReader,
	docs database.DocumentStore,
	provider ai.Provider,
	embedder ai.Embedder,
	retrievalSize int,
) *Service {
	return &Service{
		people:        people,
		docs:          docs,
		index:         NewIndex(),
		provider:      provider,
		embedder:      embedder,
		retrievalSize: retrievalSize,
	}
}

// Ingest rebuilds the retrieval index from the current registration
// snapshot. Without an embedder the documents are still stored, but
// nothing is indexed for vector search.
func (s *Service) Ingest(ctx context.Context) (*IngestResult, error) {
	people, err := s.people.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot registrations: %w", err)
	}

	docs := BuildDocuments(people)
	result := &IngestResult{Documents: len(docs)}

	if s.embedder == nil {
		result.Skipped = true
	} else {
		for i := range docs {
			embedding, err := s.embedder.EmbedText(ctx, docs[i].Text)
			if err != nil {
				return nil, fmt.Errorf("embed document for %s: %w", docs[i].PersonID, err)
			}
			docs[i].Embedding = embedding
			result.Indexed++
		}
	}

	if err := s.docs.ReplaceAll(ctx, docs); err != nil {
		return nil, fmt.Errorf("store documents: %w", err)
	}
	s.index.Rebuild(docs)

	return result, nil
}

// Query answers a question about the registration log. It tries vector
// retrieval with an LLM first, then a plain LLM over recent records,
// and finally a local keyword heuristic.
func (s *Service) Query(ctx context.Context, question string) (*Answer, error) {
	if answer := s.queryVector(ctx, question); answer != nil {
		return answer, nil
	}
	if answer := s.queryLLM(ctx, question); answer != nil {
		return answer, nil
	}
	return s.queryLocal(ctx, question)
}

// queryVector answers using embedding retrieval plus the LLM. Returns
// nil when the backend is unavailable or fails.
func (s *Service) queryVector(ctx context.Context, question string) *Answer {
	if s.provider == nil || s.embedder == nil {
		return nil
	}

	embedding, err := s.embedder.EmbedText(ctx, question)
	if err != nil {
		log.Printf("qa: question embedding failed, falling back: %v", err)
		return nil
	}

	docs := s.index.Search(embedding, s.retrievalSize)
	if len(docs) == 0 {
		// Index may not have been rebuilt since startup; try the store.
		stored, _, err := s.docs.SearchSimilar(ctx, embedding, s.retrievalSize)
		if err != nil {
			log.Printf("qa: similarity search failed, falling back: %v", err)
			return nil
		}
		docs = stored
	}
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Text
	}

	text, err := s.provider.Answer(ctx, question, texts)
	if err != nil {
		log.Printf("qa: %s answer failed, falling back: %v", s.provider.Name(), err)
		return nil
	}

	return &Answer{Text: text, SourcesCount: len(texts), Backend: BackendVector}
}

// queryLLM answers with the LLM over the most recent records, without
// retrieval. Returns nil when the backend is unavailable or fails.
func (s *Service) queryLLM(ctx context.Context, question string) *Answer {
	if s.provider == nil {
		return nil
	}

	people, err := s.people.All(ctx)
	if err != nil {
		log.Printf("qa: registration snapshot failed, falling back: %v", err)
		return nil
	}
	if len(people) > llmContextSize {
		people = people[len(people)-llmContextSize:]
	}

	texts := make([]string, len(people))
	for i := range people {
		texts[i] = formatRecord(&people[i])
	}

	text, err := s.provider.Answer(ctx, question, texts)
	if err != nil {
		log.Printf("qa: %s answer failed, falling back: %v", s.provider.Name(), err)
		return nil
	}

	return &Answer{Text: text, SourcesCount: len(texts), Backend: BackendLLM}
}

// queryLocal answers without any model, using keyword heuristics over
// the log. This is the backend of last resort and always produces an
// answer.
func (s *Service) queryLocal(ctx context.Context, question string) (*Answer, error) {
	normalized := normalizeQuestion(question)

	switch {
	case strings.Contains(normalized, "last") || strings.Contains(normalized, "latest") ||
		strings.Contains(normalized, "most recent"):
		last, err := s.people.Last(ctx)
		if err != nil {
			return nil, fmt.Errorf("query last registration: %w", err)
		}
		if last == nil {
			return &Answer{Text: "No one has been registered yet.", Backend: BackendLocal}, nil
		}
		return &Answer{
			Text: fmt.Sprintf("The last registered person is %s (registered at %s).",
				last.Name, last.RegisteredAt.UTC().Format("2006-01-02 15:04:05 UTC")),
			SourcesCount: 1,
			Backend:      BackendLocal,
		}, nil

	case strings.Contains(normalized, "how many") || strings.Contains(normalized, "count") ||
		strings.Contains(normalized, "number of"):
		count, err := s.people.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		noun := "people are"
		if count == 1 {
			noun = "person is"
		}
		return &Answer{
			Text:    fmt.Sprintf("%d %s registered.", count, noun),
			Backend: BackendLocal,
		}, nil
	}

	return &Answer{
		Text:    "I can answer questions about registrations, for example who registered last or how many people are registered.",
		Backend: BackendLocal,
	}, nil
}
