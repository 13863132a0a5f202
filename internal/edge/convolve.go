package edge

import "math"

// maxMagnitude is the largest value an output pixel can hold.
const maxMagnitude = 255

// applyKernel convolves k with the 3x3 neighborhood centered on output pixel
// (x, y). pad is a single-channel buffer padded by one pixel on every side
// with row stride pw, so output (x, y) sits at padded (x+1, y+1).
func applyKernel(pad []uint8, pw, x, y int, k *Kernel) int {
	sum := 0
	for ky := -1; ky <= 1; ky++ {
		row := pad[(y+1+ky)*pw+x:]
		for kx := -1; kx <= 1; kx++ {
			sum += int(row[kx+1]) * k[ky+1][kx+1]
		}
	}
	return sum
}

// magnitude reduces two gradient components to an 8-bit value. The square
// sum is formed in float64; |gx|,|gy| <= 4*255 for the supported kernels so
// it stays exact. The result is clamped to 255 and truncated.
func magnitude(gx, gy int) uint8 {
	fx, fy := float64(gx), float64(gy)
	m := math.Sqrt(fx*fx + fy*fy)
	if m >= maxMagnitude {
		return maxMagnitude
	}
	return uint8(m)
}
