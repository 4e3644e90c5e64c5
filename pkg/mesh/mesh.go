// Package mesh defines the shared vertex/index buffer that all six
// editing views read and the cube placer appends to. Buffers are
// append-only: vertices are never mutated, reordered, or removed once
// added, so an index remains valid for the life of the session.
package mesh

// Vec3 is a point in model space. One grid cell is one unit.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Buffer is a triangle mesh in flat-array form: Positions holds 3
// floats per vertex (x,y,z), Indices holds 3 uint32s per triangle.
// Index N references the Nth vertex appended, counted globally across
// all placements rather than per cube.
type Buffer struct {
	Positions []float32 `json:"positions"`
	Indices   []uint32  `json:"indices"`
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// IsEmpty returns true if the buffer has no geometry.
func (b *Buffer) IsEmpty() bool {
	return len(b.Positions) == 0
}

// Vertex returns the i-th vertex. The caller must ensure i is in range.
func (b *Buffer) Vertex(i int) Vec3 {
	return Vec3{
		X: float64(b.Positions[i*3]),
		Y: float64(b.Positions[i*3+1]),
		Z: float64(b.Positions[i*3+2]),
	}
}

// Append adds new geometry to the end of the buffer. The indices must
// already be offset against the buffer's current vertex count (see
// NextIndex). Append never reorders or compacts existing data.
func (b *Buffer) Append(positions []float32, indices []uint32) {
	b.Positions = append(b.Positions, positions...)
	b.Indices = append(b.Indices, indices...)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		Positions: make([]float32, len(b.Positions)),
		Indices:   make([]uint32, len(b.Indices)),
	}
	copy(c.Positions, b.Positions)
	copy(c.Indices, b.Indices)
	return c
}

// NextIndex returns the vertex offset for the next placement, computed
// as max(indices)+1. An empty index sequence yields 0, never an error.
//
// This is a full scan on purpose. Recomputing the offset from the index
// sequence itself, instead of trusting the position array length or a
// cached counter, keeps the two arrays from drifting apart when a store
// only offers whole-buffer replace.
func NextIndex(indices []uint32) uint32 {
	if len(indices) == 0 {
		return 0
	}
	var max uint32
	for _, i := range indices {
		if i > max {
			max = i
		}
	}
	return max + 1
}
