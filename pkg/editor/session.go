package editor

import (
	"github.com/voxtools/orthovox/pkg/mesh"
	"github.com/voxtools/orthovox/pkg/placer"
	"github.com/voxtools/orthovox/pkg/store"
	"github.com/voxtools/orthovox/pkg/view"
)

// PrimaryButton is the pointer button that starts a drag preview.
// Placement is bound to the secondary/context action instead.
const PrimaryButton = 0

// Placement reports one confirmed cube placement: the snapped cell and
// the geometry that was appended to the shared buffer.
type Placement struct {
	Cell      view.Cell `json:"cell"`
	Positions []float32 `json:"positions"`
	Indices   []uint32  `json:"indices"`
}

// Session is one editing session over a single model. Pointer events
// arrive on the UI event loop and are handled synchronously; the store
// serializes the actual buffer mutation.
type Session struct {
	cfg      Config
	store    *store.ModelStore
	surfaces map[view.View]Surface
	drag     drag
}

// NewSession creates a session editing cfg.ModelID in the given store.
func NewSession(cfg Config, st *store.ModelStore) *Session {
	return &Session{
		cfg:      cfg,
		store:    st,
		surfaces: make(map[view.View]Surface),
	}
}

// Config returns the session settings.
func (s *Session) Config() Config {
	return s.cfg
}

// RegisterSurface records where a view's canvas sits on screen. The
// frontend calls this once per canvas, and again after any layout
// change.
func (s *Session) RegisterSurface(surf Surface) {
	s.surfaces[surf.View] = surf
}

// surface looks up a registered surface. A missing surface is an
// expected transient state during startup, so callers short-circuit
// with no mutation rather than fail.
func (s *Session) surface(v view.View) (Surface, bool) {
	surf, ok := s.surfaces[v]
	return surf, ok
}

// PointerDown feeds a button press into the drag machine. Only the
// primary button starts a drag.
func (s *Session) PointerDown(v view.View, clientX, clientY float64, button int) Preview {
	surf, ok := s.surface(v)
	if !ok || button != PrimaryButton {
		return Preview{}
	}
	s.drag.down(v, surf.ToCanvas(clientX, clientY))
	return s.drag.preview()
}

// PointerMove updates the rubber-band preview. It never mutates the
// mesh buffer, and a pointer that crosses onto another view's canvas
// mid-drag leaves the preview unchanged.
func (s *Session) PointerMove(v view.View, clientX, clientY float64) Preview {
	surf, ok := s.surface(v)
	if !ok {
		return Preview{}
	}
	return s.drag.move(v, surf.ToCanvas(clientX, clientY))
}

// PointerUp ends any drag in progress. No placement happens here.
func (s *Session) PointerUp() Preview {
	s.drag.up()
	return Preview{}
}

// Place handles the secondary/context action: convert the click to a
// grid cell, build one cube, and append it to the shared buffer. The
// second return is false when the view's surface is not registered yet,
// in which case nothing is emitted.
func (s *Session) Place(v view.View, clientX, clientY float64) (Placement, bool) {
	surf, ok := s.surface(v)
	if !ok {
		return Placement{}, false
	}

	pt := view.Snap(surf.ToCanvas(clientX, clientY), s.cfg.CellSize)
	cell := view.Unproject(pt, v, s.cfg.CellSize)
	return s.PlaceCell(cell), true
}

// PlaceCell appends one unit cube anchored at the given cell. Scripted
// placements use this entry directly, bypassing surface lookup, so
// every placement path shares the same offset and append discipline.
func (s *Session) PlaceCell(cell view.Cell) Placement {
	offset := mesh.NextIndex(s.store.Indices(s.cfg.ModelID))
	positions, indices := placer.Cube(cell, 1, offset)
	s.store.Append(s.cfg.ModelID, positions, indices)
	return Placement{Cell: cell, Positions: positions, Indices: indices}
}

// Mesh returns a snapshot of the model buffer for redraw.
func (s *Session) Mesh() *mesh.Buffer {
	return s.store.Buffer(s.cfg.ModelID)
}

// GridOverlay projects every buffer vertex onto the given view, for
// the grid-snap visualization the drawing routine renders.
func (s *Session) GridOverlay(v view.View) []view.Point {
	b := s.Mesh()
	points := make([]view.Point, 0, b.VertexCount())
	for i := 0; i < b.VertexCount(); i++ {
		points = append(points, view.Project(b.Vertex(i), v, s.cfg.CellSize))
	}
	return points
}
