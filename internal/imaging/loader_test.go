package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImage writes a solid-color PNG into a temporary directory and
// returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return writePNG(t, img)
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return f.Name()
}

func TestNewBufferCache(t *testing.T) {
	cache := NewBufferCache()
	if cache == nil {
		t.Fatal("NewBufferCache returned nil")
	}
	if cache.buffers == nil {
		t.Fatal("NewBufferCache did not initialize buffers map")
	}
}

func TestBufferCache_Load(t *testing.T) {
	cache := NewBufferCache()
	path := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	b, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Width != 100 || b.Height != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", b.Width, b.Height)
	}
	if b.Channels != 3 {
		t.Errorf("Channels: got %d, want 3 for an opaque image", b.Channels)
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}

	// Second load comes from the cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}
}

func TestBufferCache_LoadGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	img.Pix[5] = 200
	path := writePNG(t, img)

	b, err := NewBufferCache().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Channels != 1 {
		t.Errorf("Channels: got %d, want 1", b.Channels)
	}
	if b.At(1, 1) != 200 {
		t.Errorf("At(1,1): got %d, want 200", b.At(1, 1))
	}
}

func TestBufferCache_EvictAndClear(t *testing.T) {
	cache := NewBufferCache()
	p1 := createTestImage(t, 10, 10, color.White)
	p2 := createTestImage(t, 10, 10, color.Black)

	for _, p := range []string{p1, p2} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	cache.Evict(p1)
	if cache.Len() != 1 {
		t.Errorf("after Evict: got %d entries, want 1", cache.Len())
	}
	cache.Evict("/not/cached.png")

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("after Clear: got %d entries, want 0", cache.Len())
	}
}

func TestBufferCache_ConcurrentLoad(t *testing.T) {
	cache := NewBufferCache()
	path := createTestImage(t, 20, 20, color.Gray{Y: 90})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Error("Decode should fail for an empty path")
	}
	if _, err := Decode("/nonexistent/path/image.png"); err == nil {
		t.Error("Decode should fail for a missing file")
	}

	notImage := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(notImage, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Decode(notImage); err == nil {
		t.Error("Decode should fail for a file that is not an image")
	}
}

// boundedUniform reports arbitrary bounds without backing pixel storage.
type boundedUniform struct {
	*image.Uniform
	rect image.Rectangle
}

func (b boundedUniform) Bounds() image.Rectangle { return b.rect }

func TestFromDecoded_SizeLimit(t *testing.T) {
	huge := boundedUniform{image.NewUniform(color.Black), image.Rect(0, 0, 20000, 20000)}
	if _, err := fromDecoded(huge); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("20000x20000: got %v, want ErrImageTooLarge", err)
	}

	// 4 channels tip a size that fits at 3 over the limit.
	side := 5500
	opaque := boundedUniform{image.NewUniform(color.Black), image.Rect(0, 0, side, side)}
	if got := channelsOf(opaque); got != 3 {
		t.Fatalf("channelsOf(opaque uniform): got %d, want 3", got)
	}
	if side*side*3 > MaxImageBytes || side*side*4 <= MaxImageBytes {
		t.Fatalf("test size %d does not straddle the limit", side)
	}
	translucent := boundedUniform{image.NewUniform(color.NRGBA{0, 0, 0, 128}), image.Rect(0, 0, side, side)}
	if _, err := fromDecoded(translucent); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("%dx%d RGBA: got %v, want ErrImageTooLarge", side, side, err)
	}

	empty := boundedUniform{image.NewUniform(color.Black), image.Rect(0, 0, 0, 5)}
	if _, err := fromDecoded(empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("0x5: got %v, want ErrInvalidDimensions", err)
	}

	small := boundedUniform{image.NewUniform(color.Gray{200}), image.Rect(0, 0, 4, 3)}
	b, err := fromDecoded(small)
	if err != nil {
		t.Fatalf("4x3: unexpected error %v", err)
	}
	if b.Width != 4 || b.Height != 3 || b.Channels != 3 || b.At(2, 1) != 200 {
		t.Errorf("4x3: got %s with first sample %d", b, b.At(2, 1))
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewBufferCache()

	opaque := createTestImage(t, 30, 20, color.RGBA{1, 2, 3, 255})
	info, err := LoadImageInfo(cache, opaque)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 30 || info.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.HasAlpha {
		t.Error("HasAlpha: got true for an opaque image")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}

	translucent := createTestImage(t, 5, 5, color.NRGBA{1, 2, 3, 100})
	info, err = LoadImageInfo(cache, translucent)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if !info.HasAlpha || info.Channels != 4 {
		t.Errorf("translucent image: got HasAlpha=%v Channels=%d, want true/4", info.HasAlpha, info.Channels)
	}
}

func TestGetDimensions(t *testing.T) {
	path := createTestImage(t, 64, 48, color.White)
	dims, err := GetDimensions(NewBufferCache(), path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 64 || dims.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", dims.Width, dims.Height)
	}

	if _, err := GetDimensions(NewBufferCache(), "/nonexistent.png"); err == nil {
		t.Error("GetDimensions should fail for a missing file")
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := map[string]string{
		"a.png":  "png",
		"a.JPG":  "jpeg",
		"a.jpeg": "jpeg",
		"a.gif":  "gif",
		"a.bmp":  "bmp",
		"a.tiff": "tiff",
		"a.webp": "webp",
		"a.xyz":  "unknown",
	}
	for path, want := range tests {
		if got := formatFromExt(path); got != want {
			t.Errorf("formatFromExt(%q): got %s, want %s", path, got, want)
		}
	}
}
