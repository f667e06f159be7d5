// Package face implements the recognition core: descriptor extraction
// from a face region, descriptor serialization, and nearest-neighbor
// matching against registered people. Everything here is pure and
// stateless; each call operates on the snapshot it is handed.
package face

import (
	"encoding/json"
	"fmt"
)

// Unknown is the name reported for a face that matched no registered person.
const Unknown = "Unknown"

// Box is a detected face rectangle in pixel coordinates within the
// source image. Serialized on the wire as a 4-element [x, y, w, h] array.
type Box struct {
	X int
	Y int
	W int
	H int
}

// MarshalJSON encodes the box as [x, y, w, h].
func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{b.X, b.Y, b.W, b.H})
}

// UnmarshalJSON decodes a [x, y, w, h] array.
func (b *Box) UnmarshalJSON(data []byte) error {
	var arr [4]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("box must be a [x, y, w, h] array: %w", err)
	}
	b.X, b.Y, b.W, b.H = arr[0], arr[1], arr[2], arr[3]
	return nil
}

// MatchResult pairs a detected region with the recognized name.
// Computed fresh per recognition call, never persisted.
type MatchResult struct {
	Box  Box    `json:"box"`
	Name string `json:"name"`
}
