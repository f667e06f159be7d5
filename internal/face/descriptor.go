package face

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

const (
	// DescriptorEdge is the side of the square grid a face region is
	// resampled to before flattening.
	DescriptorEdge = 128
	// DescriptorLen is the length of every descriptor produced by Extract.
	DescriptorLen = DescriptorEdge * DescriptorEdge
)

// Extract converts a face region into a fixed-length, unit-normalized
// descriptor. The region is resampled to 128x128 with bilinear
// interpolation, reduced to a single luminance channel (BT.601 weights;
// grayscale input passes through unchanged since its channels are
// equal), scaled to [0,1] and flattened row-major. The resulting vector
// is divided by its Euclidean norm unless the norm is zero, in which
// case the all-zero vector is returned as-is.
//
// The resampling policy is part of the stored-descriptor format:
// changing it makes previously stored descriptors incomparable.
func Extract(region image.Image) []float32 {
	resized := image.NewRGBA(image.Rect(0, 0, DescriptorEdge, DescriptorEdge))
	draw.BiLinear.Scale(resized, resized.Bounds(), region, region.Bounds(), draw.Over, nil)

	desc := make([]float32, 0, DescriptorLen)
	var sumSquares float64
	for y := range DescriptorEdge {
		for x := range DescriptorEdge {
			r, g, b, _ := resized.At(x, y).RGBA()
			// ITU-R BT.601 luma formula on 8-bit samples.
			luma := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			v := luma / 255.0
			desc = append(desc, float32(v))
			sumSquares += v * v
		}
	}

	if sumSquares > 0 {
		norm := float32(math.Sqrt(sumSquares))
		for i := range desc {
			desc[i] /= norm
		}
	}

	return desc
}

// CropRegion copies the part of img covered by box into a fresh image.
// The box is clamped to the image bounds; a box entirely outside the
// image yields an empty region.
func CropRegion(img image.Image, box Box) image.Image {
	rect := image.Rect(box.X, box.Y, box.X+box.W, box.Y+box.H).Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), img, rect.Min, draw.Src)
	return out
}
