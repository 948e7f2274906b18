package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh vertex: position, outward normal, RGBA color.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec4
}

const (
	// VertexFloats is the number of float32 components per vertex.
	VertexFloats = 10
	// FloatSize is the size of one component in bytes.
	FloatSize = 4
	// Stride is the byte distance between consecutive vertices in the
	// interleaved stream.
	Stride = VertexFloats * FloatSize
)

// Mesh is the output of the generators: shared vertices plus triangle
// indices in triples.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Interleave flattens the vertices into the position/normal/color
// float stream the vertex buffer expects.
func (m Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexFloats)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(), v.Color.W(),
		)
	}
	return out
}

// TriangleCount returns the number of triangles described by the
// index slice.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
