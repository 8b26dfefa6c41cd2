package app

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontBank struct {
	regular *opentype.Font
	cache   map[float64]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[float64]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	return bank
}

// face returns a cached face of the given size, falling back to the basic
// bitmap font when the TTF could not be parsed.
func (b *fontBank) face(sizePt float64) font.Face {
	if f, ok := b.cache[sizePt]; ok {
		return f
	}
	if b.regular == nil {
		return basicfont.Face7x13
	}
	opts := &opentype.FaceOptions{Size: sizePt, DPI: 72, Hinting: font.HintingFull}
	face, err := opentype.NewFace(b.regular, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[sizePt] = face
	return face
}

func measure(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	// 26.6 fixed point to pixels, rounded
	px := (int(font.MeasureString(face, s)) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}

func metricsOf(face font.Face, s string) (width, ascent, descent int) {
	m := face.Metrics()
	return measure(face, s), m.Ascent.Round(), m.Descent.Round()
}
