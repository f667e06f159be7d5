package qa

import (
	"sync"

	"github.com/coder/hnsw"

	"github.com/mzeman/facegate/internal/database"
)

const indexMaxNeighbors = 16

// Index is an in-memory HNSW index over registration documents. It is
// rebuilt on every ingest so lookups never touch the database.
type Index struct {
	mu      sync.RWMutex
	graph   *hnsw.Graph[int]
	idToDoc map[int]*database.Document
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		idToDoc: make(map[int]*database.Document),
	}
}

// Rebuild replaces the index contents with the given documents.
// Documents without embeddings are skipped.
func (idx *Index) Rebuild(docs []database.Document) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.graph = nil
	idx.idToDoc = make(map[int]*database.Document, len(docs))

	g := hnsw.NewGraph[int]()
	g.M = indexMaxNeighbors
	g.Ml = 1.0 / float64(indexMaxNeighbors)
	g.Distance = hnsw.CosineDistance

	added := 0
	for i := range docs {
		doc := &docs[i]
		if len(doc.Embedding) == 0 {
			continue
		}
		g.Add(hnsw.MakeNode(i, doc.Embedding))
		idx.idToDoc[i] = doc
		added++
	}

	if added > 0 {
		idx.graph = g
	}
}

// Search returns up to k documents nearest to the query embedding.
func (idx *Index) Search(query []float32, k int) []database.Document {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.graph == nil {
		return nil
	}

	neighbors := idx.graph.Search(query, k)
	docs := make([]database.Document, 0, len(neighbors))
	for _, n := range neighbors {
		if doc, ok := idx.idToDoc[n.Key]; ok {
			docs = append(docs, *doc)
		}
	}
	return docs
}

// Size returns the number of indexed documents.
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.idToDoc)
}
