package imaging

import "errors"

var (
	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrInvalidChannelCount is returned when an operation receives a channel
	// count it cannot handle.
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrCorruptImageData is returned when the pixel slice length does not
	// match width*height*channels.
	ErrCorruptImageData = errors.New("corrupt image data")

	// ErrImageTooLarge is returned by the loader when a decoded image would
	// exceed MaxImageBytes.
	ErrImageTooLarge = errors.New("image too large")
)
