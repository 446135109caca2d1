package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// The game draws everything with vector primitives, so the only loaded resource
// is the HUD font. Faces are cached per size and share one parsed source.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Call it from the game loop only.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(18)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource      // Parsed Go Regular font, created on first use
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces: size -> face
	fontData      []byte                      // Raw TrueType data
}

// NewResourceManager creates a ResourceManager backed by the Go Regular font.
func NewResourceManager() *ResourceManager {
	return NewResourceManagerWithFont(goregular.TTF)
}

// NewResourceManagerWithFont creates a ResourceManager backed by custom TrueType data.
func NewResourceManagerWithFont(ttf []byte) *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[string]*text.GoTextFace),
		fontData:      ttf,
	}
}

// LoadFont creates a text face with the given size.
// The face is cached for future use.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the font data cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(rm.fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	goTextFace := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// Returns nil if LoadFont has not been called for this size.
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%.1f", size)]
}
