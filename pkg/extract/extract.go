// Package extract assembles the indexed triangle mesh produced by a
// contouring pass. The driver hands discovered crossing vertices and
// triangles to an Extractor; the concrete Sink stores them in a Mesh
// with index-aligned position and normal buffers and consistently
// outward triangle winding.
package extract

import (
	"cogentcore.org/core/math32"

	"github.com/chazu/contour/pkg/field"
)

// Extractor is the mesh-sink capability: the two calls a contouring
// driver makes as crossings and triangles are discovered.
type Extractor interface {
	// ExtractVertex records a crossing vertex at position.
	ExtractVertex(position math32.Vector3)
	// ExtractFace records a triangle by the indices of three
	// previously extracted vertices.
	ExtractFace(face [3]uint32)
}

// Compile-time interface check.
var _ Extractor = (*Sink)(nil)

// Sink is an Extractor writing into a Mesh, sampling per-vertex
// normals from a Hermite field. The Mesh is exclusively owned by the
// Sink for the duration of a pass; it is not safe for concurrent use.
type Sink struct {
	mesh *Mesh
	src  field.HermiteSource
}

// NewSink binds a mesh buffer and the field normals are sampled from.
func NewSink(mesh *Mesh, src field.HermiteSource) *Sink {
	return &Sink{mesh: mesh, src: src}
}

// ExtractVertex appends position to the position buffer and the field
// normal at position to the normal buffer at the same index.
func (s *Sink) ExtractVertex(position math32.Vector3) {
	s.mesh.Positions = append(s.mesh.Positions, position)
	s.mesh.Normals = append(s.mesh.Normals, s.src.SampleNormal(position))
}

// ExtractFace appends a triangle, reversing its index order first if
// the analytic plane normal disagrees in sign with the averaged
// vertex normal. This keeps winding consistently outward regardless
// of the order the driver discovered the three vertices in.
func (s *Sink) ExtractFace(face [3]uint32) {
	if s.averageNormal(face).Dot(s.planeNormal(face)) < 0 {
		face[0], face[2] = face[2], face[0]
	}
	s.mesh.Faces = append(s.mesh.Faces, face)
}

// averageNormal is the arithmetic mean of the three stored vertex
// normals.
func (s *Sink) averageNormal(face [3]uint32) math32.Vector3 {
	var sum math32.Vector3
	for _, i := range face {
		sum = sum.Add(s.mesh.Normals[i])
	}
	return sum.DivScalar(3)
}

// planeNormal is the un-normalized cross product of two triangle edge
// vectors; only its sign relative to the vertex normals matters.
func (s *Sink) planeNormal(face [3]uint32) math32.Vector3 {
	p0 := s.mesh.Positions[face[0]]
	p1 := s.mesh.Positions[face[1]]
	p2 := s.mesh.Positions[face[2]]
	return p1.Sub(p0).Cross(p2.Sub(p1))
}
