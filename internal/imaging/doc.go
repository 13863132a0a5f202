// Package imaging provides the raw pixel buffer used by the edge detector and
// the transforms and collaborators that surround it.
//
// A PixelBuffer is a flat, row-major, channel-interleaved byte slice with a
// known width, height and channel count (1-4). Buffers are values: every
// transform in this package (grayscale conversion, border padding, cropping)
// returns a freshly allocated buffer and never mutates its input.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Collaborators
//
// Decoding and encoding image files is kept at the edge of the package:
// FromImage and ToImage convert between image.Image and PixelBuffer,
// BufferCache loads files from disk (PNG, JPEG, GIF, BMP, TIFF, WebP), and
// EncodePNG / Save serialize single- or multi-channel buffers. The core
// transforms never look at file formats.
//
// # Thread Safety
//
// The BufferCache type is safe for concurrent use. Transforms are stateless
// and can be called concurrently on different buffers.
//
// # Error Handling
//
// Validation failures are reported with sentinel errors that callers match
// with errors.Is:
//   - ErrInvalidDimensions: width or height not positive
//   - ErrInvalidChannelCount: channel count unsupported by the operation
//   - ErrCorruptImageData: len(Pix) != Width*Height*Channels
//   - ErrImageTooLarge: decoded image exceeds MaxImageBytes
package imaging
