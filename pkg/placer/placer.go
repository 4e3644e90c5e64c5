// Package placer builds the geometry of axis-aligned cubes and appends
// it to a shared mesh buffer. A placement is 8 corner vertices and 12
// triangles (36 indices) with outward counter-clockwise winding, offset
// so the indices reference the cube's position in the global buffer.
package placer

import (
	"github.com/voxtools/orthovox/pkg/mesh"
	"github.com/voxtools/orthovox/pkg/view"
)

// CubeVertexCount and CubeIndexCount are the per-placement growth of
// the shared buffer: 8 corners and 6 faces of 2 triangles each.
const (
	CubeVertexCount = 8
	CubeIndexCount  = 36
)

// cubeTriangles lists the 12 triangles of a cube as corner numbers in
// generation order (x varies fastest, then y, then z):
//
//	0:(0,0,0) 1:(1,0,0) 2:(0,1,0) 3:(1,1,0)
//	4:(0,0,1) 5:(1,0,1) 6:(0,1,1) 7:(1,1,1)
//
// Winding is counter-clockwise seen from outside the cube.
var cubeTriangles = [CubeIndexCount]uint32{
	0, 2, 3, 0, 3, 1, // -z
	4, 5, 7, 4, 7, 6, // +z
	0, 1, 5, 0, 5, 4, // -y
	2, 6, 7, 2, 7, 3, // +y
	0, 4, 6, 0, 6, 2, // -x
	1, 3, 7, 1, 7, 5, // +x
}

// Cube generates the geometry of one cube anchored at the given grid
// cell. The 8 corners sit at anchor + {0,size} on each axis, emitted in
// a fixed order so face winding is constant and externally predictable.
// Every index is offset by existingVertexCount, which the caller
// computes as mesh.NextIndex over the buffer's current indices.
//
// Cube is deterministic and never fails. There is no overlap detection:
// placing two cubes at the same cell produces duplicate geometry, which
// is accepted behavior.
func Cube(anchor view.Cell, size float64, existingVertexCount uint32) (positions []float32, indices []uint32) {
	base := anchor.Vec3()

	positions = make([]float32, 0, CubeVertexCount*3)
	for corner := 0; corner < CubeVertexCount; corner++ {
		positions = append(positions,
			float32(base.X+size*float64(corner&1)),
			float32(base.Y+size*float64((corner>>1)&1)),
			float32(base.Z+size*float64((corner>>2)&1)),
		)
	}

	indices = make([]uint32, 0, CubeIndexCount)
	for _, t := range cubeTriangles {
		indices = append(indices, t+existingVertexCount)
	}
	return positions, indices
}

// Anchors recovers the placed grid cells from a buffer built by Cube.
// Corner 0 of each 8-vertex group is the cube's minimum corner, so the
// anchor is read back directly. A trailing partial group is ignored.
func Anchors(b *mesh.Buffer) []view.Cell {
	cubes := b.VertexCount() / CubeVertexCount
	cells := make([]view.Cell, 0, cubes)
	for i := 0; i < cubes; i++ {
		v := b.Vertex(i * CubeVertexCount)
		cells = append(cells, view.Cell{X: int(v.X), Y: int(v.Y), Z: int(v.Z)})
	}
	return cells
}
