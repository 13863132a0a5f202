package edge

import (
	"fmt"

	"github.com/ironsheep/edge-tools-mcp/internal/imaging"
)

// Stats summarizes an edge map produced by Detect.
type Stats struct {
	// Max is the strongest magnitude in the map.
	Max uint8 `json:"max"`

	// Mean is the average magnitude over all pixels.
	Mean float64 `json:"mean"`

	// Threshold is the cutoff used for EdgePixels.
	Threshold uint8 `json:"threshold"`

	// EdgePixels counts pixels whose magnitude is >= Threshold.
	EdgePixels int `json:"edge_pixels"`

	// TotalPixels is width*height.
	TotalPixels int `json:"total_pixels"`

	// EdgeRatio is EdgePixels / TotalPixels.
	EdgeRatio float64 `json:"edge_ratio"`
}

// Summarize computes Stats over a single-channel edge map.
func Summarize(edges imaging.PixelBuffer, threshold uint8) (Stats, error) {
	if edges.Channels != 1 {
		return Stats{}, fmt.Errorf("edge map must have 1 channel, got %d: %w",
			edges.Channels, imaging.ErrInvalidChannelCount)
	}
	if err := edges.Validate(); err != nil {
		return Stats{}, err
	}

	s := Stats{Threshold: threshold, TotalPixels: len(edges.Pix)}
	if s.TotalPixels == 0 {
		return s, nil
	}

	var sum int
	for _, v := range edges.Pix {
		sum += int(v)
		if v > s.Max {
			s.Max = v
		}
		if v >= threshold {
			s.EdgePixels++
		}
	}
	s.Mean = float64(sum) / float64(s.TotalPixels)
	s.EdgeRatio = float64(s.EdgePixels) / float64(s.TotalPixels)
	return s, nil
}
