package ui

import "image/color"

type Theme struct {
	WindowTitle     string
	WindowWidthPx   int
	WindowHeightPx  int
	DropLabel       string
	DropLabelColor  color.RGBA
	DropLabelShadow color.RGBA
	CaptionColor    color.RGBA
	LabelSizePt     float64
	CaptionSizePt   float64
	LabelFadeSec    float32
	CaptionInsetPct float64
}

func DefaultTheme() Theme {
	return Theme{
		WindowTitle:     "Oval",
		WindowWidthPx:   450,
		WindowHeightPx:  800,
		DropLabel:       "Drop a video here",
		DropLabelColor:  color.RGBA{0xE8, 0xEE, 0xFF, 0xFF},
		DropLabelShadow: color.RGBA{0x0B, 0x0E, 0x1C, 0xC0},
		CaptionColor:    color.RGBA{0xB4, 0xC2, 0xE0, 0xFF},
		LabelSizePt:     18,
		CaptionSizePt:   12,
		LabelFadeSec:    0.25,
		CaptionInsetPct: 0.12,
	}
}
