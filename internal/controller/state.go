// Package controller turns host input events into the oval's session state
// and the uniform values the shading pass reads.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"ovalplayer/internal/platform"
	"ovalplayer/internal/shade"

	"github.com/go-gl/mathgl/mgl32"
)

// TickStep is the fixed amount of time each timer tick adds, in seconds.
const TickStep = 1.0 / 60

var ErrUnsupportedMedia = errors.New("controller: unsupported media type")

type Phase int

const (
	PhaseEmpty Phase = iota
	PhasePaused
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePaused:
		return "paused"
	case PhasePlaying:
		return "playing"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is the whole session. It is owned by one Controller and only
// mutated from its handlers.
type State struct {
	Geometry      Size
	Ticks         uint64
	PointerOffset mgl32.Vec2
	Hover         bool
	Phase         Phase
	Media         string
	LabelVisible  bool
}

// ElapsedTime is Ticks fixed steps, computed from the tick count so that
// it never accumulates rounding drift.
func (s State) ElapsedTime() float32 {
	return float32(float64(s.Ticks) * TickStep)
}

// HasMedia reports whether a media reference has been set.
func (s State) HasMedia() bool {
	return s.Media != ""
}

// Uniforms snapshots the fields the shading pass reads.
func (s State) Uniforms() shade.Uniforms {
	hover := float32(0)
	if s.Hover {
		hover = 1
	}
	return shade.Uniforms{
		PointerOffset: s.PointerOffset,
		ElapsedTime:   s.ElapsedTime(),
		Hover:         hover,
	}
}

type Controller struct {
	state State
	host  platform.Host
}

func New(host platform.Host) *Controller {
	return &Controller{host: host}
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Uniforms() shade.Uniforms {
	return c.state.Uniforms()
}

// Dispatch routes one event to its handler. Only the query events fill in
// the response.
func (c *Controller) Dispatch(ev platform.Event) platform.Response {
	var resp platform.Response
	switch ev.Type {
	case platform.EventTick:
		c.Tick()
	case platform.EventResize:
		c.GeometryChanged(Size{W: ev.Width, H: ev.Height})
	case platform.EventPointerMove:
		c.PointerMove(Point{X: ev.X, Y: ev.Y})
	case platform.EventKeyDown:
		c.KeyDown(ev.Key)
	case platform.EventWindowDragQuery:
		resp.Drag = c.WindowDragQuery(Point{X: ev.X, Y: ev.Y})
	case platform.EventDragHover:
		resp.Drop = c.DragHover(Point{X: ev.X, Y: ev.Y})
	case platform.EventDrop:
		c.Drop(Point{X: ev.X, Y: ev.Y}, ev.Paths)
	default:
		Logger().Debug("ignoring event", "type", ev.Type.String())
	}
	return resp
}

// Tick advances the elapsed time by one fixed step.
func (c *Controller) Tick() {
	c.state.Ticks++
	c.pushUniforms()
	c.host.RequestRedraw()
}

// GeometryChanged records the new surface size for later hit-tests.
func (c *Controller) GeometryChanged(size Size) {
	c.state.Geometry = size
}

// PointerMove updates the pointer offset, the hover flag and the drop label.
func (c *Controller) PointerMove(p Point) {
	g := c.state.Geometry
	if !g.Valid() {
		return
	}
	c.state.PointerOffset = PointerOffset(p, g)
	c.state.Hover = HitTest(p, g)
	c.pushUniforms()
	c.setLabel(c.state.Phase == PhaseEmpty && c.state.Hover)
	c.host.RequestRedraw()
}

// WindowDragQuery asks whether a press at p should move the window.
func (c *Controller) WindowDragQuery(p Point) platform.DragResponse {
	if HitTest(p, c.state.Geometry) {
		return platform.DragStartMove
	}
	return platform.DragNoOpinion
}

func (c *Controller) KeyDown(key string) {
	switch key {
	case platform.KeyEscape:
		Logger().Info("quit requested")
		c.host.Quit()
	case platform.KeySpace:
		c.togglePlayback()
	}
}

// DragHover tells the host whether a drop at p would be taken.
func (c *Controller) DragHover(p Point) platform.DropResponse {
	if HitTest(p, c.state.Geometry) {
		return platform.DropAccept
	}
	return platform.DropReject
}

// Drop loads the last whitelisted path of a drop landing inside the oval.
func (c *Controller) Drop(p Point, paths []string) {
	if !HitTest(p, c.state.Geometry) {
		Logger().Debug("drop outside oval", "x", p.X, "y", p.Y, "files", len(paths))
		return
	}
	accepted := ""
	for _, path := range paths {
		if IsMedia(path) {
			accepted = path
		}
	}
	if accepted == "" {
		Logger().Info("drop rejected: no supported media", "files", len(paths))
		return
	}
	c.loadMedia(accepted)
	c.state.LabelVisible = false
	c.host.SetDropLabelVisible(false)
}

// OpenMedia loads path chosen outside of a drop, for example from a file
// dialog. No hit-test applies.
func (c *Controller) OpenMedia(path string) error {
	if !IsMedia(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedMedia, filepath.Base(path))
	}
	c.loadMedia(path)
	if c.state.LabelVisible {
		c.setLabel(false)
	}
	return nil
}

func (c *Controller) loadMedia(path string) {
	c.state.Media = path
	if c.state.Phase == PhaseEmpty {
		c.setPhase(PhasePaused)
	}
	Logger().Info("media loaded", "path", path, "phase", c.state.Phase.String())
}

func (c *Controller) togglePlayback() {
	switch c.state.Phase {
	case PhasePaused:
		c.setPhase(PhasePlaying)
	case PhasePlaying:
		c.setPhase(PhasePaused)
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.state.Phase == p {
		return
	}
	Logger().Info("phase change", slog.String("from", c.state.Phase.String()), slog.String("to", p.String()))
	c.state.Phase = p
}

func (c *Controller) setLabel(visible bool) {
	if c.state.LabelVisible == visible {
		return
	}
	c.state.LabelVisible = visible
	c.host.SetDropLabelVisible(visible)
}

func (c *Controller) pushUniforms() {
	g := c.state.Geometry
	c.host.ApplyUniforms(c.state.Uniforms().Map(mgl32.Vec2{float32(g.W), float32(g.H)}))
}
