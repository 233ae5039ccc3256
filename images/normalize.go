// Package images implements the square-pad normalization pipeline for
// sprite assets: decode, alpha conversion, centered transparent padding,
// Lanczos resampling, and lossless re-encoding.
package images

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Result describes a single normalized file.
type Result struct {
	// Path is the file that was overwritten.
	Path string
	// OriginalWidth is the decoded width before normalization.
	OriginalWidth int
	// OriginalHeight is the decoded height before normalization.
	OriginalHeight int
	// TargetSize is the side length the file was resampled to.
	TargetSize int
}

// Normalize rewrites the PNG at path as a targetSize×targetSize square.
// Non-square inputs are first composited onto a transparent square canvas
// sized to their largest dimension, so the aspect ratio survives the
// resample. The file is overwritten in place with a best-compression PNG.
//
// Arguments:
// - path: Path to a readable, writable PNG file.
// - targetSize: Output side length in pixels; must be positive.
//
// Returns:
// - *Result: The original dimensions and the applied target size.
// - error: An error if any stage of the pipeline fails; path is untouched
//   unless the final write itself failed.
func Normalize(path string, targetSize int) (*Result, error) {
	if targetSize <= 0 {
		return nil, errors.Errorf("invalid target size: %d", targetSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading image")
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decoding PNG")
	}

	nrgba := ToNRGBA(src)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()

	squared := PadToSquare(nrgba)
	resized := resize.Resize(uint(targetSize), uint(targetSize), squared, resize.Lanczos3)

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(&buf, resized); err != nil {
		return nil, errors.Wrap(err, "encoding PNG")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, errors.Wrap(err, "writing image")
	}

	return &Result{
		Path:           path,
		OriginalWidth:  width,
		OriginalHeight: height,
		TargetSize:     targetSize,
	}, nil
}

// ToNRGBA converts an image to straight-alpha NRGBA. Images without an
// alpha channel come out fully opaque. An image that is already NRGBA is
// returned as-is.
//
// Arguments:
// - img: The image to convert.
//
// Returns:
// - *image.NRGBA: The straight-alpha image.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return nrgba
}

// PadToSquare composites img onto a fully transparent square canvas whose
// side equals the larger of the image's dimensions, centered with integer
// floor offsets. The canvas starts transparent, so a source copy is an
// alpha-masked paste with no blending.
//
// Arguments:
// - img: The straight-alpha image to pad.
//
// Returns:
// - *image.NRGBA: A new side×side canvas with img centered on it.
func PadToSquare(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	side := width
	if height > side {
		side = height
	}
	offsetX := (side - width) / 2
	offsetY := (side - height) / 2

	// A freshly allocated NRGBA is zeroed, so alpha is 0 at every pixel.
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(canvas, image.Rect(offsetX, offsetY, offsetX+width, offsetY+height),
		img, bounds.Min, draw.Src)
	return canvas
}
