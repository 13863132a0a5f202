package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// MaxImageBytes caps the raw size (width*height*channels) of a decoded image.
const MaxImageBytes = 100 * 1024 * 1024

// BufferCache provides thread-safe caching of decoded pixel buffers to avoid
// redundant disk reads and decodes.
//
// Buffers are keyed by the exact path string passed to Load. Since buffers are
// never mutated by this module's transforms, the cached value is handed out
// directly.
//
// # Memory Management
//
// Cached buffers remain in memory until explicitly removed via Evict() or
// Clear(). Long-running processes handling many images should clean up
// periodically.
//
// # Example Usage
//
//	cache := imaging.NewBufferCache()
//	buf, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    glog.Fatal(err)
//	}
//	// Use buf...
//	cache.Evict("/path/to/image.png") // Optional: free memory
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]PixelBuffer
}

// NewBufferCache creates and initializes a new empty cache.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		buffers: make(map[string]PixelBuffer),
	}
}

// Load retrieves a buffer from the cache or decodes it from disk if not
// cached.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. EXIF orientation
// is applied while decoding so the buffer matches what a viewer shows.
//
// # Errors
//
//   - Returns error if the path is empty, the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
//   - ErrInvalidDimensions if the decoded image is empty
//   - ErrImageTooLarge if the decoded raster exceeds MaxImageBytes
func (c *BufferCache) Load(path string) (PixelBuffer, error) {
	c.mu.RLock()
	if b, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := Decode(path)
	if err != nil {
		return PixelBuffer{}, err
	}

	c.mu.Lock()
	c.buffers[path] = b
	c.mu.Unlock()

	return b, nil
}

// Clear removes all buffers from the cache.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]PixelBuffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Len returns the number of cached buffers.
func (c *BufferCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.buffers)
}

// Decode reads and decodes an image file without caching it.
func Decode(path string) (PixelBuffer, error) {
	if path == "" {
		return PixelBuffer{}, fmt.Errorf("file path cannot be empty")
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return PixelBuffer{}, fmt.Errorf("failed to load image %q: %w", path, err)
	}

	b, err := fromDecoded(img)
	if err != nil {
		return PixelBuffer{}, err
	}

	glog.V(1).Infof("Loaded image %s: %s", path, b)
	return b, nil
}

// fromDecoded checks the geometry of a decoded image against the size limit
// before any pixel data is copied, then converts it.
func fromDecoded(img image.Image) (PixelBuffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}

	c := channelsOf(img)
	if w > MaxImageBytes/h/c {
		return PixelBuffer{}, fmt.Errorf("%w: %dx%dx%d exceeds %d bytes", ErrImageTooLarge, w, h, c, MaxImageBytes)
	}
	return FromImage(img), nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Channels is the channel count of the decoded buffer (1, 3 or 4).
	Channels int `json:"channels"`

	// Format is the detected image format based on the file extension:
	// "png", "jpeg", "gif", "bmp", "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded buffer carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through cache and returns its metadata.
func LoadImageInfo(cache *BufferCache, path string) (*ImageInfo, error) {
	b, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         b.Width,
		Height:        b.Height,
		Channels:      b.Channels,
		Format:        formatFromExt(path),
		HasAlpha:      b.Channels == 4,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *BufferCache, path string) (*DimensionsResult, error) {
	b, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{
		Width:  b.Width,
		Height: b.Height,
	}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
