// Package render builds a drawable, interactive scene graph from a HUD
// layout document. It owns asset loading (textures and TTF fonts), the
// nine-slice panel renderer, widget hit testing, and the id lookup the
// runtime uses to mutate label text and button depth.
package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/agesail/internal/hud"
)

// Assets loads and caches the textures and fonts a layout document
// references. Paths in the document are relative; Assets resolves them
// against its root directory.
type Assets struct {
	root        string
	imageCache  map[string]*ebiten.Image
	sourceCache map[string]*text.GoTextFaceSource
	faceCache   map[string]*text.GoTextFace
}

// NewAssets creates an asset manager rooted at the given directory.
func NewAssets(root string) *Assets {
	return &Assets{
		root:        root,
		imageCache:  make(map[string]*ebiten.Image),
		sourceCache: make(map[string]*text.GoTextFaceSource),
		faceCache:   make(map[string]*text.GoTextFace),
	}
}

// Image loads the texture referenced by ref, caching by path.
func (a *Assets) Image(ref hud.AssetRef) (*ebiten.Image, error) {
	if ref.Kind != hud.AssetImage {
		return nil, fmt.Errorf("asset '%s' is %q, not an image", ref.Path, ref.Kind)
	}

	if cached, ok := a.imageCache[ref.Path]; ok {
		return cached, nil
	}

	file, err := os.Open(filepath.Join(a.root, filepath.FromSlash(ref.Path)))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", ref.Path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", ref.Path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	a.imageCache[ref.Path] = ebitenImg
	return ebitenImg, nil
}

// Font loads the TTF referenced by ref at the given size. Faces are cached
// per path and size; sources per path.
func (a *Assets) Font(ref hud.AssetRef, size float64) (*text.GoTextFace, error) {
	if ref.Kind != hud.AssetTTF {
		return nil, fmt.Errorf("asset '%s' is %q, not a font", ref.Path, ref.Kind)
	}

	cacheKey := fmt.Sprintf("%s:%.1f", ref.Path, size)
	if cached, ok := a.faceCache[cacheKey]; ok {
		return cached, nil
	}

	source, ok := a.sourceCache[ref.Path]
	if !ok {
		fontData, err := os.ReadFile(filepath.Join(a.root, filepath.FromSlash(ref.Path)))
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", ref.Path, err)
		}

		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", ref.Path, err)
		}
		a.sourceCache[ref.Path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	a.faceCache[cacheKey] = face
	return face, nil
}
