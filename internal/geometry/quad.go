package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// QuadColor is the fixed vertex color of generated quads.
var QuadColor = mgl32.Vec4{0.8, 0.1, 0.3, 1}

// GenerateQuad builds a flat rectangle centred on the origin of the
// frame spanned by lengthDir and planeNormal. length runs along
// lengthDir, width along the third axis lengthDir x planeNormal. All
// four vertices carry planeNormal as-is, so a non-unit normal is the
// caller's choice.
func GenerateQuad(length, width float32, planeNormal, lengthDir mgl32.Vec3) (Mesh, error) {
	if length <= 0 || width <= 0 {
		return Mesh{}, fmt.Errorf("quad: sides must be positive, got %g x %g", length, width)
	}
	third := lengthDir.Cross(planeNormal)
	if third.Len() < 1e-6 {
		return Mesh{}, fmt.Errorf("quad: plane normal and length direction are parallel")
	}

	// The frame columns are x=lengthDir, y=planeNormal, z=x cross y;
	// corners are laid out in frame coordinates and carried to world
	// space through the inverse.
	space := mgl32.Mat3FromCols(lengthDir, planeNormal, third).Inv()

	hl, hw := length/2, width/2
	corners := [4]mgl32.Vec3{
		{-hl, 0, -hw},
		{-hl, 0, hw},
		{hl, 0, hw},
		{hl, 0, -hw},
	}

	vertices := make([]Vertex, 0, 4)
	for _, c := range corners {
		vertices = append(vertices, Vertex{
			Position: space.Mul3x1(c),
			Normal:   planeNormal,
			Color:    QuadColor,
		})
	}

	return Mesh{
		Vertices: vertices,
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
	}, nil
}
