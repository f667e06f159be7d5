package face

import (
	"image"

	"github.com/mzeman/facegate/internal/database"
)

// Recognize extracts a descriptor for every detected box and matches it
// against the registered people. Results come back in the same order as
// the input boxes; two boxes may legitimately resolve to the same
// person. Unmatched faces are reported as Unknown.
func Recognize(img image.Image, boxes []Box, people []database.Person, threshold float64) []MatchResult {
	results := make([]MatchResult, 0, len(boxes))
	for _, box := range boxes {
		desc := Extract(CropRegion(img, box))
		name := Unknown
		if person, _ := Match(desc, people, threshold); person != nil {
			name = person.Name
		}
		results = append(results, MatchResult{Box: box, Name: name})
	}
	return results
}
