// Package detector abstracts face detection as an injected capability.
// Detection runs in an external sidecar (a cascade-classifier service);
// the recognition core only ever sees the rectangles it returns.
package detector

import (
	"context"

	"github.com/mzeman/facegate/internal/face"
)

// Detector locates faces in an encoded image and returns their bounding
// boxes in pixel coordinates. An empty slice is a valid result and
// means no face was found; it is not an error.
type Detector interface {
	Detect(ctx context.Context, imageData []byte) ([]face.Box, error)
}
