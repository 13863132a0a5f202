package edge

import "testing"

func TestApplyKernel(t *testing.T) {
	// 3x3 image 1..9 padded by replication.
	pad := []uint8{
		1, 1, 2, 3, 3,
		1, 1, 2, 3, 3,
		4, 4, 5, 6, 6,
		7, 7, 8, 9, 9,
		7, 7, 8, 9, 9,
	}

	tests := []struct {
		name string
		x, y int
		k    Kernel
		want int
	}{
		{"sobel x center", 1, 1, sobelX, 8},
		{"sobel y center", 1, 1, sobelY, 24},
		{"sobel x corner", 0, 0, sobelX, 4},
		{"sobel y corner", 0, 0, sobelY, 12},
		{"prewitt x center", 1, 1, prewittX, 6},
		{"prewitt y center", 1, 1, prewittY, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyKernel(pad, 5, tt.x, tt.y, &tt.k); got != tt.want {
				t.Errorf("applyKernel(%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestApplyKernel_Extremes(t *testing.T) {
	// Dark left column, bright right column: largest possible Sobel response.
	pad := []uint8{
		0, 128, 255,
		0, 128, 255,
		0, 128, 255,
	}
	if got := applyKernel(pad, 3, 0, 0, &sobelX); got != 4*255 {
		t.Errorf("sobel x: got %d, want %d", got, 4*255)
	}
	if got := applyKernel(pad, 3, 0, 0, &sobelY); got != 0 {
		t.Errorf("sobel y: got %d, want 0", got)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		gx, gy int
		want   uint8
	}{
		{0, 0, 0},
		{3, 4, 5},
		{-3, -4, 5},
		// Fractions are truncated, not rounded.
		{4, 12, 12},
		{8, 24, 25},
		{180, 180, 254},
		{255, 0, 255},
		// sqrt(2*181^2) = 255.97 clamps.
		{181, 181, 255},
		{1020, 1020, 255},
		{-1020, 0, 255},
	}
	for _, tt := range tests {
		if got := magnitude(tt.gx, tt.gy); got != tt.want {
			t.Errorf("magnitude(%d, %d): got %d, want %d", tt.gx, tt.gy, got, tt.want)
		}
	}
}
