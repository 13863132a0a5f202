package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// jpegQuality is used when Save writes a .jpg/.jpeg file.
const jpegQuality = 95

// FromImage converts a decoded image into a PixelBuffer.
//
// The channel count mirrors what the source can carry:
//   - *image.Gray and *image.Gray16 -> 1 channel
//   - opaque images -> 3 channels (R, G, B)
//   - everything else -> 4 channels (non-premultiplied R, G, B, A)
//
// 16-bit samples are reduced to their high byte.
func FromImage(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		b := NewGray(w, h)
		for y := 0; y < h; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.Pix[y*w:(y+1)*w], src.Pix[off:off+w])
		}
		return b
	case *image.Gray16:
		b := NewGray(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.Pix[y*w+x] = uint8(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
		return b
	}

	channels := channelsOf(img)
	b := PixelBuffer{
		Pix:      make([]uint8, w*h*channels),
		Width:    w,
		Height:   h,
		Channels: channels,
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			b.Pix[i] = c.R
			b.Pix[i+1] = c.G
			b.Pix[i+2] = c.B
			if channels == 4 {
				b.Pix[i+3] = c.A
			}
			i += channels
		}
	}
	return b
}

// channelsOf returns the channel count FromImage produces for img.
func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// ToImage wraps a PixelBuffer as an image.Image suitable for the standard
// encoders: *image.Gray for one channel, *image.NRGBA for three or four.
func ToImage(b PixelBuffer) (image.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, b.Width, b.Height)

	switch b.Channels {
	case 1:
		return &image.Gray{
			Pix:    append([]uint8(nil), b.Pix...),
			Stride: b.Width,
			Rect:   rect,
		}, nil
	case 3, 4:
		img := image.NewNRGBA(rect)
		n := b.Len()
		for i := 0; i < n; i++ {
			s := b.Pix[i*b.Channels:]
			d := img.Pix[i*4 : i*4+4 : i*4+4]
			d[0], d[1], d[2] = s[0], s[1], s[2]
			if b.Channels == 4 {
				d[3] = s[3]
			} else {
				d[3] = 0xff
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("cannot build image from %d channels: %w", b.Channels, ErrInvalidChannelCount)
	}
}

// EncodePNG serializes a buffer as PNG bytes.
func EncodePNG(b PixelBuffer) ([]byte, error) {
	img, err := ToImage(b)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNGBase64 is EncodePNG followed by standard base64 encoding, the form
// the MCP server returns to clients.
func EncodePNGBase64(b PixelBuffer) (string, error) {
	data, err := EncodePNG(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Save writes a buffer to path. The encoder is chosen from the extension:
// .jpg/.jpeg -> JPEG, .bmp -> BMP, anything else -> PNG. The parent directory
// must already exist.
func Save(path string, b PixelBuffer) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	img, err := ToImage(b)
	if err != nil {
		return fmt.Errorf("cannot save invalid image data: %w", err)
	}

	var enc imgio.Encoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(jpegQuality)
	case ".bmp":
		enc = imgio.BMPEncoder()
	default:
		enc = imgio.PNGEncoder()
	}

	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
