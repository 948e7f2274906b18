package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuadCanonicalGround(t *testing.T) {
	// The identity frame: +Y normal, length along +X. Corners land at
	// +-length/2 on X and +-width/2 on Z.
	normal := mgl32.Vec3{0, 1, 0}
	m, err := GenerateQuad(4, 2, normal, mgl32.Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(m.Vertices), 4; got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
	if got, want := len(m.Indices), 6; got != want {
		t.Fatalf("got %d indices, want %d", got, want)
	}

	want := []mgl32.Vec3{{-2, 0, -1}, {-2, 0, 1}, {2, 0, 1}, {2, 0, -1}}
	for i := range want {
		if m.Vertices[i].Position.Sub(want[i]).Len() > 1e-6 {
			t.Fatalf("corner %d: got %v, want %v", i, m.Vertices[i].Position, want[i])
		}
	}
	for i, v := range m.Vertices {
		if v.Normal != normal {
			t.Fatalf("vertex %d: normal %v, want %v", i, v.Normal, normal)
		}
		if v.Color != QuadColor {
			t.Fatalf("vertex %d: color %v, want %v", i, v.Color, QuadColor)
		}
	}
}

func TestQuadGroundFacesUp(t *testing.T) {
	m, err := GenerateQuad(10, 10, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := 0; k < len(m.Indices); k += 3 {
		a := m.Vertices[m.Indices[k]].Position
		b := m.Vertices[m.Indices[k+1]].Position
		c := m.Vertices[m.Indices[k+2]].Position
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Y() <= 0 {
			t.Fatalf("triangle %d faces down, cross %v", k/3, face)
		}
	}
}

func TestQuadTiltedFrame(t *testing.T) {
	// A wall frame: normal +Z, length along +X. The quad must lie in
	// the z=0 plane and keep the supplied normal untouched.
	normal := mgl32.Vec3{0, 0, 1}
	m, err := GenerateQuad(4, 2, normal, mgl32.Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range m.Vertices {
		if z := v.Position.Z(); z > 1e-6 || z < -1e-6 {
			t.Fatalf("vertex %d: z=%g, want 0", i, z)
		}
		if v.Normal != normal {
			t.Fatalf("vertex %d: normal %v, want %v", i, v.Normal, normal)
		}
	}
}

func TestQuadTrianglesWindConsistently(t *testing.T) {
	m, err := GenerateQuad(6, 3, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	faces := make([]mgl32.Vec3, 0, 2)
	for k := 0; k < len(m.Indices); k += 3 {
		a := m.Vertices[m.Indices[k]].Position
		b := m.Vertices[m.Indices[k+1]].Position
		c := m.Vertices[m.Indices[k+2]].Position
		faces = append(faces, b.Sub(a).Cross(c.Sub(a)).Normalize())
	}
	if faces[0].Sub(faces[1]).Len() > 1e-5 {
		t.Fatalf("triangle normals disagree: %v vs %v", faces[0], faces[1])
	}
}

func TestQuadKeepsNonUnitNormal(t *testing.T) {
	normal := mgl32.Vec3{0, 2, 0}
	m, err := GenerateQuad(1, 1, normal, mgl32.Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range m.Vertices {
		if v.Normal != normal {
			t.Fatalf("vertex %d: normal %v, want %v unscaled", i, v.Normal, normal)
		}
	}
}

func TestQuadRejectsBadParameters(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	right := mgl32.Vec3{1, 0, 0}
	if _, err := GenerateQuad(0, 1, up, right); err == nil {
		t.Fatal("zero length: expected an error")
	}
	if _, err := GenerateQuad(1, -1, up, right); err == nil {
		t.Fatal("negative width: expected an error")
	}
	if _, err := GenerateQuad(1, 1, up, up); err == nil {
		t.Fatal("parallel directions: expected an error")
	}
	if _, err := GenerateQuad(1, 1, mgl32.Vec3{}, right); err == nil {
		t.Fatal("zero normal: expected an error")
	}
}
