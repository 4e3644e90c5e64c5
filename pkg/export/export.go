// Package export converts a placed voxel model into a solid and writes
// it out as STL. It builds one box per placed cell with the sdfx CAD
// library, unions them, and tessellates with marching cubes.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/voxtools/orthovox/pkg/mesh"
	"github.com/voxtools/orthovox/pkg/view"
)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

// cellBox builds one cube solid with its minimum corner at the cell's
// anchor. sdf.Box3D centers the box at the origin, so it is shifted by
// half a cell plus the anchor.
func cellBox(c view.Cell, size float64) (sdf.SDF3, error) {
	s, err := sdf.Box3D(v3.Vec{X: size, Y: size, Z: size}, 0)
	if err != nil {
		return nil, fmt.Errorf("export: box: %w", err)
	}
	m := sdf.Translate3d(v3.Vec{
		X: float64(c.X) + size/2,
		Y: float64(c.Y) + size/2,
		Z: float64(c.Z) + size/2,
	})
	return sdf.Transform3D(s, m), nil
}

// Solid unions the placed cells into a single solid. An empty cell
// list is an error since an empty SDF has no bounding box to
// tessellate.
func Solid(cells []view.Cell, size float64) (sdf.SDF3, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("export: no cells placed")
	}

	boxes := make([]sdf.SDF3, 0, len(cells))
	for _, c := range cells {
		b, err := cellBox(c, size)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return sdf.Union3D(boxes...), nil
}

// ToMesh tessellates a solid into a flat-array mesh buffer using
// marching cubes at the given resolution.
func ToMesh(s sdf.SDF3, meshCells int) *mesh.Buffer {
	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(s, renderer)

	b := &mesh.Buffer{
		Positions: make([]float32, 0, len(triangles)*9),
		Indices:   make([]uint32, 0, len(triangles)*3),
	}
	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			b.Positions = append(b.Positions, float32(v.X), float32(v.Y), float32(v.Z))
			b.Indices = append(b.Indices, uint32(i*3+j))
		}
	}
	return b
}

// WriteSTL tessellates the placed cells and writes them to an STL file.
func WriteSTL(cells []view.Cell, size float64, path string) error {
	s, err := Solid(cells, size)
	if err != nil {
		return err
	}
	render.ToSTL(s, path, render.NewMarchingCubesUniform(DefaultMeshCells))
	return nil
}
