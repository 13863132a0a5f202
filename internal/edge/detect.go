package edge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/edge-tools-mcp/internal/imaging"
)

// MinSize is the smallest width and height Detect accepts.
const MinSize = 3

var (
	// ErrImageTooSmall is returned when width or height is below MinSize.
	ErrImageTooSmall = errors.New("image too small for edge detection")

	// ErrInvalidBoundary is returned by ParseBoundary for unknown names.
	ErrInvalidBoundary = errors.New("invalid boundary policy")
)

// Boundary selects how output pixels on the image border are produced.
type Boundary int

const (
	// BoundaryReplicate computes border pixels from a border-replicated copy
	// of the image. This is the default.
	BoundaryReplicate Boundary = iota

	// BoundaryZero leaves the outermost ring of output pixels at 0 and only
	// computes the interior. Kept for parity with older outputs.
	BoundaryZero
)

// ParseBoundary maps "replicate" or "zero" (any case) to a Boundary. The empty
// string selects BoundaryReplicate.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "replicate":
		return BoundaryReplicate, nil
	case "zero":
		return BoundaryZero, nil
	}
	return 0, fmt.Errorf("%w: %q (supported: replicate, zero)", ErrInvalidBoundary, name)
}

// String returns the boundary policy name.
func (b Boundary) String() string {
	switch b {
	case BoundaryReplicate:
		return "replicate"
	case BoundaryZero:
		return "zero"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Options tunes DetectWithOptions. The zero value matches Detect.
type Options struct {
	Boundary Boundary
}

// Detect returns the gradient-magnitude edge map of img using the named
// operator ("sobel" or "prewitt", case-insensitive).
//
// The result is a new single-channel buffer with the same width and height as
// img. Color input (3 or 4 channels) is converted to grayscale first.
//
// # Errors
//
// Checked in this order, each wrapping a distinct sentinel:
//   - ErrInvalidOperator
//   - ErrImageTooSmall (width or height < 3)
//   - imaging.ErrCorruptImageData
//   - imaging.ErrInvalidChannelCount (2-channel input)
func Detect(img imaging.PixelBuffer, operator string) (imaging.PixelBuffer, error) {
	return DetectWithOptions(img, operator, Options{})
}

// DetectWithOptions is Detect with an explicit boundary policy.
func DetectWithOptions(img imaging.PixelBuffer, operator string, opts Options) (imaging.PixelBuffer, error) {
	op, err := ParseOperator(operator)
	if err != nil {
		return imaging.PixelBuffer{}, err
	}
	return DetectOperator(img, op, opts)
}

// DetectOperator is DetectWithOptions for an already parsed Operator.
func DetectOperator(img imaging.PixelBuffer, op Operator, opts Options) (imaging.PixelBuffer, error) {
	if op != Sobel && op != Prewitt {
		return imaging.PixelBuffer{}, fmt.Errorf("%w: %d", ErrInvalidOperator, int(op))
	}
	kx, ky := op.Kernels()

	if opts.Boundary != BoundaryReplicate && opts.Boundary != BoundaryZero {
		return imaging.PixelBuffer{}, fmt.Errorf("%w: %d", ErrInvalidBoundary, int(opts.Boundary))
	}
	if img.Width < MinSize || img.Height < MinSize {
		return imaging.PixelBuffer{}, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrImageTooSmall, img.Width, img.Height, MinSize, MinSize)
	}
	if err := img.Validate(); err != nil {
		return imaging.PixelBuffer{}, err
	}

	gray, err := imaging.Grayscale(img)
	if err != nil {
		return imaging.PixelBuffer{}, err
	}
	padded, err := imaging.Pad(gray, 1)
	if err != nil {
		return imaging.PixelBuffer{}, err
	}

	w, h := gray.Width, gray.Height
	out := imaging.NewGray(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if opts.Boundary == BoundaryZero && (x == 0 || y == 0 || x == w-1 || y == h-1) {
				continue
			}
			gx := applyKernel(padded.Pix, padded.Width, x, y, &kx)
			gy := applyKernel(padded.Pix, padded.Width, x, y, &ky)
			out.Pix[y*w+x] = magnitude(gx, gy)
		}
	}
	return out, nil
}
