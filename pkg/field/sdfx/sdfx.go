// Package sdfx adapts solids from the github.com/deadsy/sdfx CAD
// library to the field.Source sampling contract, so spheres, boxes
// and CSG trees built with sdfx can be contoured without the kernel
// knowing about sdfx.
package sdfx

import (
	"cogentcore.org/core/math32"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/contour/pkg/field"
)

// Compile-time interface check.
var _ field.Source = (*Field)(nil)

// Field wraps an sdf.SDF3 as a scalar field source. sdfx evaluates in
// float64; values are narrowed to float32 at this boundary.
type Field struct {
	s sdf.SDF3
}

// New wraps an sdfx solid.
func New(s sdf.SDF3) *Field {
	return &Field{s: s}
}

// Sample evaluates the signed distance at a point: negative inside
// the solid, positive outside.
func (f *Field) Sample(p math32.Vector3) float32 {
	return float32(f.s.Evaluate(v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}))
}

// Bounds returns the solid's axis-aligned bounding box, the region a
// driver should sample over.
func (f *Field) Bounds() math32.Box3 {
	bb := f.s.BoundingBox()
	return math32.Box3{
		Min: math32.Vec3(float32(bb.Min.X), float32(bb.Min.Y), float32(bb.Min.Z)),
		Max: math32.Vec3(float32(bb.Max.X), float32(bb.Max.Y), float32(bb.Max.Z)),
	}
}
