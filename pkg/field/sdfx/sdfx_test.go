package sdfx

import (
	"errors"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/contour/pkg/field"
)

func sphere(t *testing.T, radius float64) *Field {
	t.Helper()
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		t.Fatalf("Sphere3D failed: %v", err)
	}
	return New(s)
}

func TestSampleSign(t *testing.T) {
	f := sphere(t, 1)
	if v := f.Sample(math32.Vec3(0, 0, 0)); v >= 0 {
		t.Errorf("center value = %g, want negative (inside)", v)
	}
	if v := f.Sample(math32.Vec3(2, 0, 0)); v <= 0 {
		t.Errorf("outside value = %g, want positive", v)
	}
	if v := f.Sample(math32.Vec3(1, 0, 0)); math32.Abs(v) > 1e-4 {
		t.Errorf("surface value = %g, want ~0", v)
	}
}

func TestFindIntersectionOnSphere(t *testing.T) {
	f := sphere(t, 1)
	sample, err := field.FindIntersection(f, math32.Vec3(0, 0, 0), math32.Vec3(2, 0, 0), 1e-3, 32)
	if err != nil {
		t.Fatalf("FindIntersection error = %v", err)
	}
	if math32.Abs(sample.Point.X-1) > 1e-3 {
		t.Errorf("crossing x = %g, want within 1e-3 of 1", sample.Point.X)
	}
	// A segment that never reaches the surface has no crossing.
	_, err = field.FindIntersection(f, math32.Vec3(2, 2, 2), math32.Vec3(3, 3, 3), 1e-3, 32)
	if !errors.Is(err, field.ErrNoSolution) {
		t.Errorf("off-surface segment error = %v, want ErrNoSolution", err)
	}
}

func TestFiniteDifferenceNormalOnSphere(t *testing.T) {
	fd, err := field.NewFiniteDifference(sphere(t, 1), 1e-3)
	if err != nil {
		t.Fatalf("NewFiniteDifference error = %v", err)
	}
	n := fd.SampleNormal(math32.Vec3(1, 0, 0))
	if math32.Abs(n.X-1) > 1e-2 || math32.Abs(n.Y) > 1e-2 || math32.Abs(n.Z) > 1e-2 {
		t.Errorf("normal = %v, want ~(1, 0, 0)", n)
	}
}

func TestBounds(t *testing.T) {
	s, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	if err != nil {
		t.Fatalf("Box3D failed: %v", err)
	}
	b := New(s).Bounds()
	// sdfx centers the box at the origin.
	if b.Max.X < 0.9 || b.Max.Y < 1.9 || b.Max.Z < 2.9 {
		t.Errorf("bounds max = %v, want to cover the half-dimensions", b.Max)
	}
	if b.Min.X > -0.9 || b.Min.Y > -1.9 || b.Min.Z > -2.9 {
		t.Errorf("bounds min = %v, want to cover the half-dimensions", b.Min)
	}
}

func TestCSGDifference(t *testing.T) {
	// A unit-ish box with a sphere bite taken out of it, the same
	// shape classic dual-contouring demos use.
	box, err := sdf.Box3D(v3.Vec{X: 1, Y: 1, Z: 1}, 0)
	if err != nil {
		t.Fatalf("Box3D failed: %v", err)
	}
	ball, err := sdf.Sphere3D(0.6)
	if err != nil {
		t.Fatalf("Sphere3D failed: %v", err)
	}
	f := New(sdf.Difference3D(box, ball))

	// The center is carved out by the sphere.
	if v := f.Sample(math32.Vec3(0, 0, 0)); v <= 0 {
		t.Errorf("carved center value = %g, want positive", v)
	}
	// A box corner survives the bite.
	if v := f.Sample(math32.Vec3(0.45, 0.45, 0.45)); v >= 0 {
		t.Errorf("corner value = %g, want negative (inside)", v)
	}
}
