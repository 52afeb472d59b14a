package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/gonewx/tilecraft/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrImageNotFound 图片资源不存在（嵌入资源和磁盘上都找不到）
var ErrImageNotFound = errors.New("image not found")

// ResourceManager is responsible for centralized management of editor resources.
// It loads images from the embedded assets (or from disk for user supplied
// paths) and caches them so each file is decoded only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// All loading happens on the game loop goroutine, so no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/images/tileset.png")
//	if errors.Is(err, ErrImageNotFound) {
//	    // render the "image not found" state
//	}
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: "name:size" -> Face
	fontSource    *text.GoTextFaceSource      // Shared Go Regular source, created lazily
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Paths starting with "assets/" or "data/" are read from the embedded resources;
// any other path is read from the OS filesystem.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error wrapping ErrImageNotFound if the file does not exist, or a decode error.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// DecodeImage 打开并解码图片，不经过缓存
func DecodeImage(path string) (image.Image, error) {
	file, err := openResource(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func openResource(path string) (io.ReadCloser, error) {
	if embedded.IsEmbeddedPath(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}

// LoadFont returns a Go Regular text face of the given size.
// Faces are cached per size; the font source is parsed once.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face

	return face, nil
}
