package face

import (
	"log"
	"math"

	"github.com/mzeman/facegate/internal/database"
)

// EuclideanDistance computes the L2 distance between two equal-length
// vectors.
func EuclideanDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Match compares a query descriptor against every candidate and returns
// the closest one together with its distance, or (nil, distance) when
// the closest candidate is not within threshold. An empty candidate
// list yields (nil, +Inf).
//
// Candidates whose descriptor length differs from the query are skipped
// rather than treated as errors; they may have been stored under an
// older extraction version. Exact distance ties resolve to the earliest
// candidate in snapshot order because only a strictly smaller distance
// replaces the current best.
func Match(query []float32, candidates []database.Person, threshold float64) (*database.Person, float64) {
	best := -1
	minDist := math.Inf(1)

	for i := range candidates {
		stored := candidates[i].Descriptor
		if len(stored) != len(query) {
			log.Printf("descriptor size mismatch for %q: stored %d, query %d; skipping",
				candidates[i].Name, len(stored), len(query))
			continue
		}
		if d := EuclideanDistance(query, stored); d < minDist {
			minDist = d
			best = i
		}
	}

	if best >= 0 && minDist < threshold {
		return &candidates[best], minDist
	}
	return nil, minDist
}
