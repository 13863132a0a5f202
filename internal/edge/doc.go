// Package edge computes gradient-magnitude edge maps with the Sobel and
// Prewitt 3x3 operators.
//
// Detect is the entry point: it normalizes the input to grayscale, pads it by
// border replication, convolves every pixel with the operator's horizontal
// and vertical kernels and reduces the two components to an 8-bit magnitude:
//
//	gx = sum(K_x * neighborhood)
//	gy = sum(K_y * neighborhood)
//	out = min(255, trunc(sqrt(gx*gx + gy*gy)))
//
// There is no smoothing, non-maximum suppression or thresholding; the output
// is the raw clamped magnitude. Every output pixel, including the image
// border, gets a value computed from replicated neighbors. The legacy policy
// that leaves border pixels at zero is available as BoundaryZero.
//
// # Thread Safety
//
// All functions are pure and allocate their results, so concurrent calls on
// different (or the same, read-only) buffers are safe. Rows of one image are
// independent; callers that want parallelism can split work themselves.
//
// # Errors
//
// Detect validates its arguments in a fixed order and fails fast:
//  1. ErrInvalidOperator: operator is not "sobel" or "prewitt" (any case)
//  2. ErrImageTooSmall: width or height below MinSize
//  3. imaging.ErrCorruptImageData: pixel slice length mismatch
package edge
