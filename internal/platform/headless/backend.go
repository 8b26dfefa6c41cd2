// Package headless provides a window-less Host that records what the
// controller asks of it. It backs snapshot rendering and the tests.
package headless

import "ovalplayer/internal/platform"

type Host struct {
	uniforms     map[string]any
	labelVisible bool
	labelChanges int
	redraws      int
	quit         bool
}

func New() *Host { return &Host{} }

func (h *Host) ApplyUniforms(values map[string]any) {
	h.uniforms = make(map[string]any, len(values))
	for k, v := range values {
		h.uniforms[k] = v
	}
}

func (h *Host) SetDropLabelVisible(visible bool) {
	h.labelVisible = visible
	h.labelChanges++
}

func (h *Host) RequestRedraw() { h.redraws++ }
func (h *Host) Quit()          { h.quit = true }

// Uniforms returns the last pushed uniform map, nil before the first push.
func (h *Host) Uniforms() map[string]any { return h.uniforms }

func (h *Host) LabelVisible() bool  { return h.labelVisible }
func (h *Host) LabelChanges() int   { return h.labelChanges }
func (h *Host) Redraws() int        { return h.redraws }
func (h *Host) QuitRequested() bool { return h.quit }

var _ platform.Host = (*Host)(nil)
