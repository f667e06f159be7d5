// Package mock provides a mock detector for tests.
package mock

import (
	"context"

	"github.com/mzeman/facegate/internal/face"
)

// MockDetector returns canned boxes or a canned error.
type MockDetector struct {
	Boxes []face.Box
	Err   error

	// Calls records every image passed to Detect.
	Calls int
}

// NewMockDetector creates a mock that detects the given boxes.
func NewMockDetector(boxes ...face.Box) *MockDetector {
	return &MockDetector{Boxes: boxes}
}

// Detect returns the configured boxes or error.
func (m *MockDetector) Detect(ctx context.Context, imageData []byte) ([]face.Box, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Boxes, nil
}
