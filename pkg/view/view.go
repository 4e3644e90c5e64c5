// Package view implements the projection mapper: the pure, stateless
// translation between a 2D point on one of the six orthographic editing
// surfaces and a 3D grid cell in the shared model. Each view drops one
// axis and scales the remaining two by the cell size.
package view

import "fmt"

// View identifies one of the six orthographic editing surfaces.
type View int

const (
	PosX View = iota // looking down the +x axis
	PosY             // looking down the +y axis
	PosZ             // looking down the +z axis
	NegX
	NegY
	NegZ
)

// Views lists all six views in a stable order.
var Views = []View{PosX, PosY, PosZ, NegX, NegY, NegZ}

func (v View) String() string {
	switch v {
	case PosX:
		return "+x"
	case PosY:
		return "+y"
	case PosZ:
		return "+z"
	case NegX:
		return "-x"
	case NegY:
		return "-y"
	case NegZ:
		return "-z"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Parse converts a view name ("+x", "-z", ...) to a View.
func Parse(name string) (View, error) {
	switch name {
	case "+x", "x":
		return PosX, nil
	case "+y", "y":
		return PosY, nil
	case "+z", "z":
		return PosZ, nil
	case "-x":
		return NegX, nil
	case "-y":
		return NegY, nil
	case "-z":
		return NegZ, nil
	}
	return 0, fmt.Errorf("unknown view %q, expected one of +x +y +z -x -y -z", name)
}

// Point is a 2D point in a view's canvas space, in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cell is a snapped 3D grid coordinate. It anchors a cube at its
// minimum corner; one cell is one model unit along each axis.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}
