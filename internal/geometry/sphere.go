package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateSphere tessellates a sphere of the given radius centred on
// the origin. meridians is the number of longitude slices, parallels
// the number of latitude steps from pole to pole; parallels-1 interior
// rings sit between the two pole vertices. Every vertex carries the
// given color and a normal equal to its normalized position.
//
// The minimum mesh is meridians=3, parallels=2, which degenerates to a
// bipyramid with no interior quads.
func GenerateSphere(meridians, parallels int, radius float32, color mgl32.Vec4) (Mesh, error) {
	if meridians < 3 {
		return Mesh{}, fmt.Errorf("sphere: need at least 3 meridians, got %d", meridians)
	}
	if parallels < 2 {
		return Mesh{}, fmt.Errorf("sphere: need at least 2 parallels, got %d", parallels)
	}
	if radius <= 0 {
		return Mesh{}, fmt.Errorf("sphere: radius must be positive, got %g", radius)
	}

	rings := parallels - 1
	vertices := make([]Vertex, 0, 2+meridians*rings)
	indices := make([]uint32, 0, 6*meridians*rings)

	meridianStep := 2 * math.Pi / float32(meridians)
	parallelStep := math.Pi / float32(parallels)

	top := mgl32.Vec3{0, radius, 0}
	bottom := mgl32.Vec3{0, -radius, 0}
	vertices = append(vertices,
		Vertex{Position: top, Normal: top.Normalize(), Color: color},
		Vertex{Position: bottom, Normal: bottom.Normalize(), Color: color},
	)

	// Walk a brush point down from the pole one parallel step at a
	// time, then spin each ring sample around Y onto its meridian.
	tilt := mgl32.Rotate3DX(parallelStep)
	for i := 0; i < meridians; i++ {
		spin := mgl32.Rotate3DY(meridianStep * float32(i))
		brush := top
		for j := 0; j < rings; j++ {
			brush = tilt.Mul3x1(brush)
			p := spin.Mul3x1(brush)
			vertices = append(vertices, Vertex{Position: p, Normal: p.Normalize(), Color: color})
		}
	}

	// interior returns the vertex index of ring sample j on meridian i.
	// Index 0 is the top pole, 1 the bottom pole.
	interior := func(i, j int) uint32 {
		return uint32(2 + i*rings + j)
	}

	for i := 0; i < meridians; i++ {
		next := (i + 1) % meridians
		indices = append(indices, 0, interior(next, 0), interior(i, 0))
		for j := 0; j < rings-1; j++ {
			indices = append(indices,
				interior(i, j), interior(next, j), interior(next, j+1),
				interior(i, j), interior(next, j+1), interior(i, j+1),
			)
		}
		indices = append(indices, 1, interior(i, rings-1), interior(next, rings-1))
	}

	// The grid above emits inward-facing triangles; swap the first and
	// third corner of each triple so front faces point outward.
	for t := 0; t < len(indices); t += 3 {
		indices[t], indices[t+2] = indices[t+2], indices[t]
	}

	return Mesh{Vertices: vertices, Indices: indices}, nil
}
