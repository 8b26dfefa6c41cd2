package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LabelFade eases a label's opacity toward shown (1) or hidden (0).
type LabelFade struct {
	tween    *gween.Tween
	duration float32
	target   bool
	value    float32
}

func NewLabelFade(duration float32) *LabelFade {
	return &LabelFade{duration: duration}
}

// SetVisible retargets the fade from the current opacity. Repeating the
// current target keeps the running tween.
func (f *LabelFade) SetVisible(visible bool) {
	if visible == f.target && (f.tween != nil || f.value == targetValue(visible)) {
		return
	}
	f.target = visible
	if f.duration <= 0 {
		f.tween = nil
		f.value = targetValue(visible)
		return
	}
	f.tween = gween.New(f.value, targetValue(visible), f.duration, ease.OutQuad)
}

// Update advances the fade by dt seconds and returns the opacity in [0, 1].
func (f *LabelFade) Update(dt float32) float32 {
	if f.tween == nil {
		return f.value
	}
	val, done := f.tween.Update(dt)
	f.value = clampOpacity(val)
	if done {
		f.value = targetValue(f.target)
		f.tween = nil
	}
	return f.value
}

func (f *LabelFade) Opacity() float32 { return f.value }

func targetValue(visible bool) float32 {
	if visible {
		return 1
	}
	return 0
}

func clampOpacity(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
