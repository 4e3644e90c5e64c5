package view

import (
	"math"

	"github.com/voxtools/orthovox/pkg/mesh"
)

// Project maps a model-space vertex to a 2D canvas point for the given
// view. The axis orthogonal to the view plane is dropped and the two
// remaining coordinates are scaled by cellSize, with sign and order per
// view. Pure and total for finite input.
//
// The three negative views share the (y, z) mapping rather than
// mirroring their positive counterparts; that collapsed behavior is
// part of the placement contract and callers depend on it.
func Project(v mesh.Vec3, view View, cellSize float64) Point {
	switch view {
	case PosX:
		return Point{X: -v.Z * cellSize, Y: -v.Y * cellSize}
	case PosY:
		return Point{X: v.X * cellSize, Y: v.Z * cellSize}
	case PosZ:
		return Point{X: v.X * cellSize, Y: -v.Y * cellSize}
	default:
		return Point{X: v.Y * cellSize, Y: v.Z * cellSize}
	}
}

// Snap moves a canvas point to the nearest grid-line crossing, the
// nearest multiple of cellSize on each axis. Snapping before conversion
// makes placement deterministic under pixel-level pointer jitter.
func Snap(p Point, cellSize float64) Point {
	return Point{
		X: math.Round(p.X/cellSize) * cellSize,
		Y: math.Round(p.Y/cellSize) * cellSize,
	}
}

// Unproject maps a canvas point back to the 3D grid cell it addresses
// in the given view. The point is snapped to the grid first, then the
// two on-plane axes invert the selection used by Project. The dropped
// axis is always 0: every view anchors new cubes at depth zero.
func Unproject(p Point, view View, cellSize float64) Cell {
	gx := int(math.Round(p.X / cellSize))
	gy := int(math.Round(p.Y / cellSize))

	switch view {
	case PosX:
		return Cell{X: 0, Y: -gy, Z: -gx}
	case PosY:
		return Cell{X: gx, Y: 0, Z: gy}
	case PosZ:
		return Cell{X: gx, Y: -gy, Z: 0}
	default:
		return Cell{X: 0, Y: gx, Z: gy}
	}
}

// Vec3 returns the cell's minimum corner as a model-space point.
func (c Cell) Vec3() mesh.Vec3 {
	return mesh.Vec3{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}
