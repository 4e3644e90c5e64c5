package editor

import "github.com/voxtools/orthovox/pkg/view"

// DragState is the interaction state of the rubber-band preview.
type DragState int

const (
	DragIdle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Preview is the rubber-band rectangle handed to the drawing routine
// while a drag is in progress. It is render-only state and never
// reaches the mesh buffer.
type Preview struct {
	Active bool       `json:"active"`
	View   string     `json:"view"`
	Start  view.Point `json:"start"`
	End    view.Point `json:"end"`
}

// drag tracks one pointer drag. The machine is Idle -> Dragging ->
// Idle: primary button down records the start point, moves update the
// preview, button up clears it. Placement is triggered by the
// secondary/context action and is independent of this machine.
type drag struct {
	state DragState
	view  view.View
	start view.Point
	last  view.Point
}

// down transitions Idle -> Dragging at the given canvas point.
func (d *drag) down(v view.View, p view.Point) {
	d.state = Dragging
	d.view = v
	d.start = p
	d.last = p
}

// move updates the preview while dragging. Moves while idle are
// ignored, as are moves from a view other than the one the drag
// started on: their points are in a different canvas's coordinate
// space and must not bend the rectangle.
func (d *drag) move(v view.View, p view.Point) Preview {
	if d.state != Dragging {
		return Preview{}
	}
	if v != d.view {
		return d.preview()
	}
	d.last = p
	return d.preview()
}

// up transitions back to Idle, clearing the start point. No placement
// is performed on release.
func (d *drag) up() {
	d.state = DragIdle
	d.start = view.Point{}
	d.last = view.Point{}
}

func (d *drag) preview() Preview {
	return Preview{
		Active: true,
		View:   d.view.String(),
		Start:  d.start,
		End:    d.last,
	}
}
