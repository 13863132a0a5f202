package imaging

import "fmt"

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts a buffer to a single intensity channel.
//
// Single-channel input is returned as a copy with identical contents. For 3-
// and 4-channel input each output pixel is
//
//	round(0.299*R + 0.587*G + 0.114*B)
//
// computed from the first three channels; alpha is ignored.
//
// # Errors
//
//   - ErrInvalidChannelCount for channel counts other than 1, 3 or 4
//   - ErrCorruptImageData if the pixel slice length is wrong
func Grayscale(src PixelBuffer) (PixelBuffer, error) {
	switch src.Channels {
	case 1, 3, 4:
	default:
		return PixelBuffer{}, fmt.Errorf("grayscale conversion supports 1, 3 or 4 channels, got %d: %w",
			src.Channels, ErrInvalidChannelCount)
	}
	if err := src.Validate(); err != nil {
		return PixelBuffer{}, err
	}

	if src.Channels == 1 {
		return src.Clone(), nil
	}

	dst := NewGray(src.Width, src.Height)
	ch := src.Channels
	for i := range dst.Pix {
		p := src.Pix[i*ch : i*ch+3 : i*ch+3]
		dst.Pix[i] = luminance(p[0], p[1], p[2])
	}
	return dst, nil
}

// luminance returns the rounded BT.601 luma of an 8-bit RGB triple.
func luminance(r, g, b uint8) uint8 {
	y := lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)
	if y >= 255 {
		return 255
	}
	return uint8(y + 0.5)
}
