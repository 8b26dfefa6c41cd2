package ui

import "path/filepath"

// TextMetrics is the measured extent of a single line of text.
type TextMetrics struct {
	Width   int
	Ascent  int
	Descent int
}

type Layout struct {
	CenterX         int
	CenterY         int
	LabelX          int
	LabelBaseline   int
	CaptionX        int
	CaptionBaseline int
}

// ComputeLayout centers the drop label in the oval and puts the caption on
// the vertical axis, CaptionInsetPct of the height above the bottom edge.
func ComputeLayout(w, h int, theme Theme, label, caption TextMetrics) Layout {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cx := w / 2
	cy := h / 2

	inset := int(float64(h) * theme.CaptionInsetPct)
	captionBase := h - inset
	if captionBase < caption.Ascent {
		captionBase = caption.Ascent
	}

	return Layout{
		CenterX:         cx,
		CenterY:         cy,
		LabelX:          cx - label.Width/2,
		LabelBaseline:   cy + (label.Ascent-label.Descent)/2,
		CaptionX:        cx - caption.Width/2,
		CaptionBaseline: captionBase,
	}
}

// Caption is the status line shown once media is loaded; it is empty
// otherwise.
func Caption(phase, media string) string {
	if media == "" {
		return ""
	}
	name := filepath.Base(media)
	switch phase {
	case "playing":
		return "Playing · " + name
	case "paused":
		return "Paused · " + name
	}
	return name
}
