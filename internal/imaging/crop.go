package imaging

import "fmt"

// Crop extracts the rectangle [x1,x2) x [y1,y2) from src into a new buffer
// with the same channel count.
func Crop(src PixelBuffer, x1, y1, x2, y2 int) (PixelBuffer, error) {
	if err := src.Validate(); err != nil {
		return PixelBuffer{}, err
	}

	// Validate coordinates
	if x1 < 0 || y1 < 0 || x2 > src.Width || y2 > src.Height {
		return PixelBuffer{}, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, src.Width, src.Height)
	}
	if x1 >= x2 || y1 >= y2 {
		return PixelBuffer{}, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	ch := src.Channels
	w, h := x2-x1, y2-y1
	dst := PixelBuffer{
		Pix:      make([]uint8, w*h*ch),
		Width:    w,
		Height:   h,
		Channels: ch,
	}
	rowBytes := w * ch
	for y := 0; y < h; y++ {
		off := ((y1+y)*src.Width + x1) * ch
		copy(dst.Pix[y*rowBytes:(y+1)*rowBytes], src.Pix[off:off+rowBytes])
	}
	return dst, nil
}

// CropRegion extracts a named region from src: top-left, top-right,
// bottom-left, bottom-right, top-half, bottom-half, left-half, right-half or
// center (the middle 50% in each direction).
func CropRegion(src PixelBuffer, region string) (PixelBuffer, error) {
	w := src.Width
	h := src.Height
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return PixelBuffer{}, fmt.Errorf("unknown region: %s", region)
	}

	return Crop(src, x1, y1, x2, y2)
}
