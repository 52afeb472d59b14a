package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/tilecraft/pkg/embedded"
)

// encodeTestPNG creates a w x h blue PNG.
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func initTestAssets(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"assets/images/sheet.png":  {Data: encodeTestPNG(t, 64, 32)},
		"assets/images/broken.png": {Data: []byte("not a png")},
	}, fstest.MapFS{})
}

func TestLoadImageFromEmbedded(t *testing.T) {
	initTestAssets(t)
	rm := NewResourceManager()

	img, err := rm.LoadImage("assets/images/sheet.png")
	if err != nil {
		t.Fatalf("LoadImage error: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 64 || h != 32 {
		t.Errorf("image size = %dx%d, want 64x32", w, h)
	}

	again, err := rm.LoadImage("assets/images/sheet.png")
	if err != nil {
		t.Fatalf("second LoadImage error: %v", err)
	}
	if again != img {
		t.Error("LoadImage should return the cached image")
	}
	if rm.GetImage("assets/images/sheet.png") != img {
		t.Error("GetImage should return the cached image")
	}
}

func TestLoadImageMissing(t *testing.T) {
	initTestAssets(t)
	rm := NewResourceManager()

	_, err := rm.LoadImage("assets/images/nope.png")
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("expected ErrImageNotFound, got %v", err)
	}
	if rm.GetImage("assets/images/nope.png") != nil {
		t.Error("failed loads must not be cached")
	}

	_, err = rm.LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("expected ErrImageNotFound for OS path, got %v", err)
	}
}

func TestLoadImageCorrupted(t *testing.T) {
	initTestAssets(t)
	rm := NewResourceManager()

	_, err := rm.LoadImage("assets/images/broken.png")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrImageNotFound) {
		t.Error("decode failure should not be reported as not found")
	}
}

func TestLoadImageFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, encodeTestPNG(t, 32, 32), 0644); err != nil {
		t.Fatalf("write test image: %v", err)
	}

	rm := NewResourceManager()
	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage(%s) error: %v", path, err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("width = %d, want 32", img.Bounds().Dx())
	}
}

func TestLoadFont(t *testing.T) {
	rm := NewResourceManager()

	face, err := rm.LoadFont(14)
	if err != nil {
		t.Fatalf("LoadFont error: %v", err)
	}
	if face.Size != 14 {
		t.Errorf("face.Size = %v, want 14", face.Size)
	}

	again, _ := rm.LoadFont(14)
	if again != face {
		t.Error("LoadFont should cache faces per size")
	}
	other, _ := rm.LoadFont(20)
	if other == face || other.Source != face.Source {
		t.Error("different sizes should share the font source but not the face")
	}
}
