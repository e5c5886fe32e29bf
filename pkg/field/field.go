// Package field defines the implicit-field sampling contract consumed
// by the contouring kernel, and the adaptive root finding that locates
// zero crossings along segments of the sampling grid.
//
// A Source must be pure: the root finder samples endpoints redundantly
// and in no particular order, and relies on re-evaluation returning
// identical values.
package field

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Source samples a scalar field at a point. Negative values lie
// inside the surface, positive outside, following the SDF convention.
type Source interface {
	Sample(point math32.Vector3) float32
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(point math32.Vector3) float32

// Sample calls f(point).
func (f SourceFunc) Sample(point math32.Vector3) float32 { return f(point) }

// HermiteSource extends Source with a gradient sample, yielding full
// Hermite data (value + normal) at a point. The normal may be
// analytic or derived (see FiniteDifference).
type HermiteSource interface {
	Source
	SampleNormal(point math32.Vector3) math32.Vector3
}

// Sample is one scalar field evaluation.
type Sample struct {
	Point math32.Vector3
	Value float32
}

// SampleAt evaluates src at point and pairs the result with it.
func SampleAt(src Source, point math32.Vector3) Sample {
	return Sample{Point: point, Value: src.Sample(point)}
}

// Endpoint names one end of a segment.
type Endpoint int

const (
	EndpointStart Endpoint = iota
	EndpointEnd
)

// SegmentClass is the outcome kind of classifying a segment for a
// zero crossing.
type SegmentClass int

const (
	// SegmentChangesSign: the endpoint values have opposite signs and
	// neither is within tolerance of zero.
	SegmentChangesSign SegmentClass = iota
	// SegmentIntersectsEndpoint: the crossing sits on an endpoint
	// (its value is within tolerance of zero).
	SegmentIntersectsEndpoint
	// SegmentNoSolution: no crossing belongs to this segment.
	SegmentNoSolution
	// SegmentIndeterminate: both endpoints are within tolerance; the
	// crossing cannot be attributed to a single segment.
	SegmentIndeterminate
)

// Classification is the result of testing a segment for a zero
// crossing. VStart and VEnd are set for SegmentChangesSign; At and
// AtValue for SegmentIntersectsEndpoint.
type Classification struct {
	Class   SegmentClass
	VStart  float32
	VEnd    float32
	At      Endpoint
	AtValue float32
}

// HasSignChange reports whether the segment carries a crossing,
// either strictly between the endpoints or on one of them.
func (c Classification) HasSignChange() bool {
	return c.Class == SegmentChangesSign || c.Class == SegmentIntersectsEndpoint
}

// ClassifySegment samples both endpoints of a segment and decides
// whether a zero crossing belongs to it.
//
// An endpoint within epsilon of zero is only reported as a crossing
// when it is the start of the segment; the same point seen as the end
// of the preceding segment classifies as no-solution there. At most
// one endpoint is ever reported as intersecting, so under an adaptive
// grid each crossing is owned by exactly one segment.
func ClassifySegment(src Source, start, end math32.Vector3, epsilon float32) Classification {
	vStart := src.Sample(start)
	vEnd := src.Sample(end)

	startNear := math32.Abs(vStart) <= epsilon
	endNear := math32.Abs(vEnd) <= epsilon

	switch {
	case startNear && endNear:
		return Classification{Class: SegmentIndeterminate}
	case startNear:
		return Classification{Class: SegmentIntersectsEndpoint, At: EndpointStart, AtValue: vStart}
	case endNear:
		return Classification{Class: SegmentNoSolution}
	}

	if math32.Signbit(vStart) != math32.Signbit(vEnd) {
		return Classification{Class: SegmentChangesSign, VStart: vStart, VEnd: vEnd}
	}
	return Classification{Class: SegmentNoSolution}
}

// ErrNoSolution reports that a segment carries no zero crossing.
// Expected and common during traversal; never fatal.
var ErrNoSolution = errors.New("field: no zero crossing on segment")

// ErrIndeterminate reports that both endpoints of a segment are
// within tolerance of zero, so the crossing cannot be attributed.
var ErrIndeterminate = errors.New("field: both segment endpoints within tolerance of zero")

// IterLimitError reports that bisection exhausted its iteration
// budget. Best carries the closest midpoint sample reached, which the
// caller may accept as an approximate crossing.
type IterLimitError struct {
	Best Sample
}

func (e *IterLimitError) Error() string {
	return fmt.Sprintf("field: iteration budget exhausted, best value %g at %v", e.Best.Value, e.Best.Point)
}

// FindIntersection converges to the zero crossing on the segment from
// start to end, returning the Hermite-ready sample at the crossing.
//
// An endpoint crossing returns immediately with no bisection spent.
// Otherwise the segment is bisected, keeping whichever half retains
// the sign change, until the midpoint value or the bracket length
// falls within epsilon. Exhausting maxIter returns *IterLimitError
// with the best midpoint found; a bracket that loses its sign change
// mid-flight (a malformed field) returns ErrNoSolution.
func FindIntersection(src Source, start, end math32.Vector3, epsilon float32, maxIter int) (Sample, error) {
	switch class := ClassifySegment(src, start, end, epsilon); class.Class {
	case SegmentIntersectsEndpoint:
		if class.At == EndpointStart {
			return Sample{Point: start, Value: class.AtValue}, nil
		}
		return Sample{Point: end, Value: class.AtValue}, nil
	case SegmentNoSolution:
		return Sample{}, ErrNoSolution
	case SegmentIndeterminate:
		return Sample{}, ErrIndeterminate
	}

	a, b := start, end
	vA, vB := src.Sample(a), src.Sample(b)

	for i := 0; i < maxIter; i++ {
		if math32.Signbit(vA) == math32.Signbit(vB) {
			return Sample{}, ErrNoSolution
		}

		if a.DistanceToSquared(b) <= epsilon*epsilon {
			mid := a.Add(b).MulScalar(0.5)
			return SampleAt(src, mid), nil
		}

		mid := a.Add(b).MulScalar(0.5)
		vMid := src.Sample(mid)

		if math32.Abs(vMid) <= epsilon {
			return Sample{Point: mid, Value: vMid}, nil
		}

		if math32.Signbit(vA) != math32.Signbit(vMid) {
			b, vB = mid, vMid
		} else {
			a, vA = mid, vMid
		}
	}

	best := SampleAt(src, a.Add(b).MulScalar(0.5))
	return Sample{}, &IterLimitError{Best: best}
}
