package extract

import "cogentcore.org/core/math32"

// Mesh is the indexed output of an extraction pass. Positions and
// Normals are parallel: index i in one corresponds to index i in the
// other. Faces index into both.
type Mesh struct {
	Positions []math32.Vector3
	Normals   []math32.Vector3
	Faces     [][3]uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Flat returns the mesh as flat arrays suitable for rendering:
// 3 floats per vertex position, 3 per normal, 3 indices per triangle.
func (m *Mesh) Flat() (vertices, normals []float32, indices []uint32) {
	vertices = make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		vertices = append(vertices, p.X, p.Y, p.Z)
	}
	normals = make([]float32, 0, len(m.Normals)*3)
	for _, n := range m.Normals {
		normals = append(normals, n.X, n.Y, n.Z)
	}
	indices = make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}
	return vertices, normals, indices
}
