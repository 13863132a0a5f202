package imaging

import "fmt"

// Pad returns a single-channel buffer of (W+2n)x(H+2n) whose border is filled
// by replicating the outermost rows and columns of src.
//
// The interior [n, n+W) x [n, n+H) is an exact copy of src. Rows are
// replicated first, across the full padded width: every row above the
// interior copies interior row 0 and every row below copies row H-1. Columns
// are replicated afterwards over every padded row, so the corner blocks take
// the value of the nearest source corner pixel.
//
// Border replication keeps convolution kernels from seeing an artificial dark
// frame around the image, which zero padding would introduce.
//
// # Errors
//
//   - ErrInvalidChannelCount if src has more than one channel
//   - ErrCorruptImageData if the pixel slice length is wrong
func Pad(src PixelBuffer, n int) (PixelBuffer, error) {
	if src.Channels != 1 {
		return PixelBuffer{}, fmt.Errorf("padding requires a single-channel buffer, got %d channels: %w",
			src.Channels, ErrInvalidChannelCount)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, src.Width, src.Height)
	}
	if n < 0 {
		return PixelBuffer{}, fmt.Errorf("padding size must be non-negative, got %d", n)
	}
	if err := src.Validate(); err != nil {
		return PixelBuffer{}, err
	}

	w, h := src.Width, src.Height
	pw, ph := w+2*n, h+2*n
	dst := NewGray(pw, ph)

	for y := 0; y < h; y++ {
		copy(dst.Pix[(y+n)*pw+n:(y+n)*pw+n+w], src.Pix[y*w:(y+1)*w])
	}

	// Rows, including the still-empty corner cells.
	top := dst.Pix[n*pw : (n+1)*pw]
	bottom := dst.Pix[(n+h-1)*pw : (n+h)*pw]
	for y := 0; y < n; y++ {
		copy(dst.Pix[y*pw:(y+1)*pw], top)
		copy(dst.Pix[(n+h+y)*pw:(n+h+y+1)*pw], bottom)
	}

	// Columns, over every padded row.
	for y := 0; y < ph; y++ {
		row := dst.Pix[y*pw : (y+1)*pw]
		left, right := row[n], row[n+w-1]
		for x := 0; x < n; x++ {
			row[x] = left
			row[n+w+x] = right
		}
	}

	return dst, nil
}
