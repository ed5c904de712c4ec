package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// art holds the images sprites and backgrounds refer to by key.
var art = map[string]*ebiten.Image{}

// LoadImages replaces the art set with the generated images. A PNG named
// <key>.png in dir takes the place of the generated image with that key.
// Missing files are skipped; undecodable ones are reported and the
// generated image is kept.
func LoadImages(generated map[string]*ebiten.Image, dir string) []error {
	var errs []error
	loaded := make(map[string]*ebiten.Image, len(generated))
	for key, img := range generated {
		if key == "" || img == nil {
			continue
		}
		if dir != "" {
			override, err := loadPNG(filepath.Join(dir, key+".png"))
			switch {
			case err == nil:
				img = override
			case !os.IsNotExist(err):
				errs = append(errs, err)
			}
		}
		loaded[key] = img
	}
	art = loaded
	return errs
}

// Image returns the art registered under key, or nil.
func Image(key string) *ebiten.Image {
	return art[key]
}

func loadPNG(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode art %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(im), nil
}
