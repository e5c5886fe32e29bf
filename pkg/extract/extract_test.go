package extract

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/chazu/contour/pkg/field"
)

// fixedNormalField is a Hermite field with a constant normal,
// letting tests steer the winding decision directly.
type fixedNormalField struct {
	normal math32.Vector3
}

func (f fixedNormalField) Sample(p math32.Vector3) float32 { return p.Z }

func (f fixedNormalField) SampleNormal(math32.Vector3) math32.Vector3 { return f.normal }

func TestSinkExtractVertex(t *testing.T) {
	mesh := &Mesh{}
	sink := NewSink(mesh, fixedNormalField{normal: math32.Vec3(0, 0, 1)})

	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
	}
	for _, p := range points {
		sink.ExtractVertex(p)
	}

	if mesh.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d, want 3", mesh.VertexCount())
	}
	if len(mesh.Positions) != len(mesh.Normals) {
		t.Fatalf("positions (%d) and normals (%d) not parallel", len(mesh.Positions), len(mesh.Normals))
	}
	for i, p := range points {
		if mesh.Positions[i] != p {
			t.Errorf("position %d = %v, want %v", i, mesh.Positions[i], p)
		}
		if mesh.Normals[i] != math32.Vec3(0, 0, 1) {
			t.Errorf("normal %d = %v, want field normal", i, mesh.Normals[i])
		}
	}
}

func TestSinkWinding(t *testing.T) {
	// Triangle in the z=0 plane; its [0,1,2] winding has plane normal
	// +Z, so the stored order depends on which way the field points.
	tests := []struct {
		name   string
		normal math32.Vector3
		want   [3]uint32
	}{
		{"agreeing order kept", math32.Vec3(0, 0, 1), [3]uint32{0, 1, 2}},
		{"disagreeing order reversed", math32.Vec3(0, 0, -1), [3]uint32{2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := &Mesh{}
			sink := NewSink(mesh, fixedNormalField{normal: tt.normal})
			sink.ExtractVertex(math32.Vec3(0, 0, 0))
			sink.ExtractVertex(math32.Vec3(1, 0, 0))
			sink.ExtractVertex(math32.Vec3(0, 1, 0))

			sink.ExtractFace([3]uint32{0, 1, 2})

			if mesh.TriangleCount() != 1 {
				t.Fatalf("TriangleCount() = %d, want 1", mesh.TriangleCount())
			}
			got := mesh.Faces[0]
			if got != tt.want {
				t.Fatalf("stored face = %v, want %v", got, tt.want)
			}
			// After the fix, the stored order's plane normal agrees
			// with the averaged vertex normal.
			p := func(i uint32) math32.Vector3 { return mesh.Positions[i] }
			plane := p(got[1]).Sub(p(got[0])).Cross(p(got[2]).Sub(p(got[1])))
			if plane.Dot(tt.normal) < 0 {
				t.Error("stored winding still disagrees with vertex normals")
			}
		})
	}
}

// A reversal swaps only the first and last index; the middle vertex
// stays in place.
func TestSinkWindingReversalShape(t *testing.T) {
	mesh := &Mesh{}
	sink := NewSink(mesh, fixedNormalField{normal: math32.Vec3(0, 0, -1)})
	sink.ExtractVertex(math32.Vec3(0, 0, 0))
	sink.ExtractVertex(math32.Vec3(2, 0, 0))
	sink.ExtractVertex(math32.Vec3(0, 3, 0))

	sink.ExtractFace([3]uint32{0, 1, 2})
	if got := mesh.Faces[0]; got[1] != 1 || got[0] != 2 || got[2] != 0 {
		t.Errorf("stored face = %v, want first/last swapped, middle kept", got)
	}
}

func TestSinkWithFiniteDifferenceField(t *testing.T) {
	// Sphere of radius 1 about the origin; finite differences supply
	// the normals.
	sphere := field.SourceFunc(func(p math32.Vector3) float32 {
		return p.Length() - 1
	})
	fd, err := field.NewFiniteDifference(sphere, 1e-3)
	if err != nil {
		t.Fatalf("NewFiniteDifference error = %v", err)
	}

	mesh := &Mesh{}
	sink := NewSink(mesh, fd)
	sink.ExtractVertex(math32.Vec3(1, 0, 0))

	n := mesh.Normals[0]
	if math32.Abs(n.X-1) > 1e-2 || math32.Abs(n.Y) > 1e-2 || math32.Abs(n.Z) > 1e-2 {
		t.Errorf("sphere surface normal = %v, want ~(1, 0, 0)", n)
	}
}

func TestMeshHelpers(t *testing.T) {
	m := &Mesh{}
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false for empty mesh")
	}
	m.Positions = append(m.Positions, math32.Vec3(1, 2, 3))
	m.Normals = append(m.Normals, math32.Vec3(0, 1, 0))
	m.Faces = append(m.Faces, [3]uint32{0, 0, 0})
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty mesh")
	}
	if m.VertexCount() != 1 || m.TriangleCount() != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", m.VertexCount(), m.TriangleCount())
	}
}

func TestMeshFlat(t *testing.T) {
	m := &Mesh{
		Positions: []math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(4, 5, 6)},
		Normals:   []math32.Vector3{math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0)},
		Faces:     [][3]uint32{{0, 1, 0}},
	}
	vertices, normals, indices := m.Flat()
	wantV := []float32{1, 2, 3, 4, 5, 6}
	wantN := []float32{0, 0, 1, 0, 1, 0}
	wantI := []uint32{0, 1, 0}
	if len(vertices) != len(wantV) {
		t.Fatalf("vertices length = %d, want %d", len(vertices), len(wantV))
	}
	for i := range wantV {
		if vertices[i] != wantV[i] {
			t.Errorf("vertices[%d] = %g, want %g", i, vertices[i], wantV[i])
		}
	}
	for i := range wantN {
		if normals[i] != wantN[i] {
			t.Errorf("normals[%d] = %g, want %g", i, normals[i], wantN[i])
		}
	}
	for i := range wantI {
		if indices[i] != wantI[i] {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], wantI[i])
		}
	}
}
