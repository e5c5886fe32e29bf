package field

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Compile-time interface check.
var _ HermiteSource = (*FiniteDifference)(nil)

// FiniteDifference derives a HermiteSource from any scalar Source by
// forward differencing: one extra sample per axis, offset by the step
// epsilon, minus the central value, normalized. A zero-length gradient
// degenerates to the zero vector.
type FiniteDifference struct {
	src     Source
	epsilon float32
}

// NewFiniteDifference wraps src with a finite-difference normal using
// the given step size. The step must be finite and greater than zero.
func NewFiniteDifference(src Source, epsilon float32) (*FiniteDifference, error) {
	if err := CheckEpsilon(epsilon); err != nil {
		return nil, fmt.Errorf("finite difference step: %w", err)
	}
	return &FiniteDifference{src: src, epsilon: epsilon}, nil
}

// Sample delegates to the wrapped source.
func (f *FiniteDifference) Sample(point math32.Vector3) float32 {
	return f.src.Sample(point)
}

// SampleNormal estimates the field gradient at point from 4 scalar
// samples (center plus one per axis) and normalizes it.
func (f *FiniteDifference) SampleNormal(point math32.Vector3) math32.Vector3 {
	center := f.src.Sample(point)
	vX := f.src.Sample(point.Add(math32.Vec3(f.epsilon, 0, 0)))
	vY := f.src.Sample(point.Add(math32.Vec3(0, f.epsilon, 0)))
	vZ := f.src.Sample(point.Add(math32.Vec3(0, 0, f.epsilon)))

	grad := math32.Vec3(vX-center, vY-center, vZ-center)
	if grad.LengthSquared() == 0 {
		return math32.Vector3{}
	}
	return grad.Normal()
}

// CheckEpsilon validates a tolerance or step-size parameter: it must
// be finite and greater than zero.
func CheckEpsilon(epsilon float32) error {
	if math32.IsNaN(epsilon) || math32.IsInf(epsilon, 0) {
		return fmt.Errorf("epsilon must be finite, got %g", epsilon)
	}
	if epsilon <= 0 {
		return fmt.Errorf("epsilon must be greater than 0, got %g", epsilon)
	}
	return nil
}
