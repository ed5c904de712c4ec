package assets

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	goRegular     *text.GoTextFaceSource
	goRegularOnce sync.Once
)

// Face is the small bitmap face used on generated images.
func Face() text.Face {
	return face
}

// FontFace returns Go Regular at size, or the bitmap face if the embedded
// font fails to parse.
func FontFace(size float64) text.Face {
	goRegularOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err == nil {
			goRegular = src
		}
	})
	if goRegular == nil {
		return face
	}
	return &text.GoTextFace{Source: goRegular, Size: size}
}
