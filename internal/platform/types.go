// Package platform defines the events a window host delivers to the
// controller and the Host interface it implements.
package platform

type EventType int

const (
	EventUnknown EventType = iota
	EventTick
	EventResize
	EventPointerMove
	EventKeyDown
	EventWindowDragQuery
	EventDragHover
	EventDrop
)

func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventResize:
		return "resize"
	case EventPointerMove:
		return "pointer-move"
	case EventKeyDown:
		return "key-down"
	case EventWindowDragQuery:
		return "window-drag-query"
	case EventDragHover:
		return "drag-hover"
	case EventDrop:
		return "drop"
	}
	return "unknown"
}

// Key names carried by EventKeyDown.
const (
	KeyEscape = "Escape"
	KeySpace  = "Space"
)

// Event is one host notification. Only the fields relevant to Type are set:
// Width/Height for EventResize, X/Y for pointer, query and drop events, Key
// for EventKeyDown and Paths for EventDrop.
type Event struct {
	Type   EventType
	Width  float64
	Height float64
	X      float64
	Y      float64
	Key    string
	Paths  []string
}

type DragResponse int

const (
	DragNoOpinion DragResponse = iota
	DragStartMove
)

type DropResponse int

const (
	DropReject DropResponse = iota
	DropAccept
)

// Response answers the query events. Event kinds without a reply leave it
// zero.
type Response struct {
	Drag DragResponse
	Drop DropResponse
}

// Host is the window collaborator driven by the controller.
type Host interface {
	// ApplyUniforms replaces the uniform values used by the next repaint.
	ApplyUniforms(values map[string]any)
	SetDropLabelVisible(visible bool)
	RequestRedraw()
	Quit()
}
