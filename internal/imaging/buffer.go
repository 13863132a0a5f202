package imaging

import (
	"fmt"
	"math"
)

// MaxChannels is the largest channel count a PixelBuffer may carry (RGBA).
const MaxChannels = 4

// PixelBuffer is an in-memory raster with 8-bit samples.
//
// Pix holds Width*Height*Channels bytes in row-major order with channels
// interleaved, so the sample for channel c of pixel (x, y) lives at
// Pix[(y*Width+x)*Channels+c]. Supported layouts are:
//   - 1 channel: intensity (grayscale)
//   - 3 channels: R, G, B
//   - 4 channels: R, G, B, A (non-premultiplied)
//
// The fields are exported so collaborators can hand over decoded data without
// an extra copy, but a PixelBuffer is treated as immutable: transforms always
// return a new buffer. Callers that need to modify samples should Clone first.
type PixelBuffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// New validates the given raster description and returns a buffer that owns a
// copy of pix.
//
// # Errors
//
//   - ErrInvalidDimensions if width or height is not positive
//   - ErrInvalidChannelCount if channels is outside [1, 4]
//   - ErrCorruptImageData if len(pix) != width*height*channels
func New(pix []uint8, width, height, channels int) (PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if channels < 1 || channels > MaxChannels {
		return PixelBuffer{}, fmt.Errorf("%w: %d (supported: 1-%d channels)", ErrInvalidChannelCount, channels, MaxChannels)
	}

	b := PixelBuffer{
		Pix:      append([]uint8(nil), pix...),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
	if err := b.Validate(); err != nil {
		return PixelBuffer{}, err
	}
	return b, nil
}

// NewGray allocates a zeroed single-channel buffer.
func NewGray(width, height int) PixelBuffer {
	return PixelBuffer{
		Pix:      make([]uint8, width*height),
		Width:    width,
		Height:   height,
		Channels: 1,
	}
}

// Validate reports ErrCorruptImageData when the pixel slice length disagrees
// with the declared geometry, including geometry whose byte count does not
// fit in an int.
func (b PixelBuffer) Validate() error {
	if b.Width < 0 || b.Height < 0 || b.Channels < 0 {
		return fmt.Errorf("%w: negative geometry %dx%dx%d", ErrCorruptImageData, b.Width, b.Height, b.Channels)
	}
	if b.Height > 0 && b.Channels > 0 && b.Width > math.MaxInt/b.Height/b.Channels {
		return fmt.Errorf("%w: %dx%dx%d overflows the addressable size", ErrCorruptImageData, b.Width, b.Height, b.Channels)
	}
	expected := b.Width * b.Height * b.Channels
	if len(b.Pix) != expected {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptImageData, expected, len(b.Pix))
	}
	return nil
}

// Len returns the number of pixels (not bytes) in the buffer.
func (b PixelBuffer) Len() int {
	return b.Width * b.Height
}

// At returns the first channel of pixel (x, y). Coordinates outside the
// buffer return 0.
func (b PixelBuffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[(y*b.Width+x)*b.Channels]
}

// Clone returns a deep copy of the buffer.
func (b PixelBuffer) Clone() PixelBuffer {
	c := b
	c.Pix = append([]uint8(nil), b.Pix...)
	return c
}

// String implements fmt.Stringer with a short geometry summary.
func (b PixelBuffer) String() string {
	return fmt.Sprintf("%dx%d (%d channels)", b.Width, b.Height, b.Channels)
}
