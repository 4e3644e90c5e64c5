// Package editor ties pointer input to the projection mapper and cube
// placer. It owns the per-view surfaces, the drag preview state
// machine, and the placement path into the shared model store. All of
// it runs on the caller's event loop; nothing here blocks.
package editor

import "github.com/voxtools/orthovox/pkg/view"

// Rect is a surface's bounding rectangle in client (device) pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Surface describes one of the six editing canvases: its view, where
// it sits in client coordinates, and its logical canvas size.
type Surface struct {
	View    view.View
	Rect    Rect
	CanvasW float64
	CanvasH float64
}

// ToCanvas converts a client-pixel position to canvas-local
// coordinates by linear rescaling:
//
//	canvas = (client - rectOrigin) / rectSize * canvasSize
func (s Surface) ToCanvas(clientX, clientY float64) view.Point {
	return view.Point{
		X: (clientX - s.Rect.X) / s.Rect.W * s.CanvasW,
		Y: (clientY - s.Rect.Y) / s.Rect.H * s.CanvasH,
	}
}
