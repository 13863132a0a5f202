package imaging

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPad_3x3(t *testing.T) {
	src := PixelBuffer{
		Pix: []uint8{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		},
		Width:    3,
		Height:   3,
		Channels: 1,
	}

	got, err := Pad(src, 1)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if got.Width != 5 || got.Height != 5 || got.Channels != 1 {
		t.Fatalf("geometry: got %s, want 5x5 (1 channels)", got)
	}

	want := []uint8{
		1, 1, 2, 3, 3,
		1, 1, 2, 3, 3,
		4, 4, 5, 6, 6,
		7, 7, 8, 9, 9,
		7, 7, 8, 9, 9,
	}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("Pad mismatch (-want +got):\n%s", diff)
	}
}

func TestPad_Corners(t *testing.T) {
	// Distinct corner values so a wrong replication order shows up.
	src := PixelBuffer{
		Pix: []uint8{
			10, 0, 0, 20,
			0, 0, 0, 0,
			30, 0, 0, 40,
		},
		Width:    4,
		Height:   3,
		Channels: 1,
	}

	got, err := Pad(src, 2)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if got.Width != 8 || got.Height != 7 {
		t.Fatalf("geometry: got %dx%d, want 8x7", got.Width, got.Height)
	}

	corners := []struct {
		name string
		x, y int
		want uint8
	}{
		{"top-left outer", 0, 0, 10},
		{"top-left inner", 1, 1, 10},
		{"top-right outer", 7, 0, 20},
		{"top-right inner", 6, 1, 20},
		{"bottom-left outer", 0, 6, 30},
		{"bottom-left inner", 1, 5, 30},
		{"bottom-right outer", 7, 6, 40},
		{"bottom-right inner", 6, 5, 40},
	}
	for _, c := range corners {
		if v := got.At(c.x, c.y); v != c.want {
			t.Errorf("%s (%d,%d): got %d, want %d", c.name, c.x, c.y, v, c.want)
		}
	}

	// Edges next to the corners copy the adjacent interior pixel.
	if v := got.At(3, 0); v != 0 {
		t.Errorf("top border (3,0): got %d, want 0", v)
	}
	if v := got.At(0, 3); v != 0 {
		t.Errorf("left border (0,3): got %d, want 0", v)
	}
}

func TestPad_InteriorIsExactCopy(t *testing.T) {
	src := PixelBuffer{Pix: make([]uint8, 20), Width: 5, Height: 4, Channels: 1}
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 11)
	}

	got, err := Pad(src, 1)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if got.At(x+1, y+1) != src.At(x, y) {
				t.Errorf("interior (%d,%d): got %d, want %d", x, y, got.At(x+1, y+1), src.At(x, y))
			}
		}
	}
}

func TestPad_Zero(t *testing.T) {
	src := PixelBuffer{Pix: []uint8{1, 2, 3, 4}, Width: 2, Height: 2, Channels: 1}
	got, err := Pad(src, 0)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("Pad(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestPad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  PixelBuffer
		n    int
		want error
	}{
		{"rgb input", PixelBuffer{Pix: make([]uint8, 27), Width: 3, Height: 3, Channels: 3}, 1, ErrInvalidChannelCount},
		{"corrupt", PixelBuffer{Pix: make([]uint8, 8), Width: 3, Height: 3, Channels: 1}, 1, ErrCorruptImageData},
		{"empty", PixelBuffer{Channels: 1}, 1, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pad(tt.src, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("Pad error: got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Pad(NewGray(3, 3), -1); err == nil {
		t.Error("Pad should reject a negative size")
	}
}
