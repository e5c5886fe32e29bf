// Package contour holds the validated top-level configuration of a
// dual-contouring pass: the Hermite field to contour, the sampling
// resolution, and the tolerance. The octree traversal driver that
// consumes it is built separately on top of the octree, field and
// extract packages.
package contour

import (
	"fmt"
	"math/bits"

	"github.com/chazu/contour/pkg/field"
	"github.com/chazu/contour/pkg/octree"
)

// DualContouring bundles a field with validated extraction
// parameters. Construct it with New; a zero value is not usable.
type DualContouring struct {
	src     field.HermiteSource
	maxRes  uint32
	epsilon float32
}

// New validates the configuration eagerly and fails construction on
// any invalid parameter: maxRes must be a power of two, epsilon must
// be finite and greater than zero.
func New(src field.HermiteSource, maxRes uint32, epsilon float32) (*DualContouring, error) {
	if maxRes == 0 || maxRes&(maxRes-1) != 0 {
		return nil, fmt.Errorf("contour: max resolution must be a power of two, got %d", maxRes)
	}
	if err := field.CheckEpsilon(epsilon); err != nil {
		return nil, fmt.Errorf("contour: %w", err)
	}
	if depth := bits.TrailingZeros32(maxRes); depth > octree.MaxLevel {
		return nil, fmt.Errorf("contour: max resolution %d needs octree depth %d, limit is %d", maxRes, depth, octree.MaxLevel)
	}
	return &DualContouring{src: src, maxRes: maxRes, epsilon: epsilon}, nil
}

// Source returns the field being contoured.
func (dc *DualContouring) Source() field.HermiteSource { return dc.src }

// MaxResolution returns the finest sampling resolution per axis.
func (dc *DualContouring) MaxResolution() uint32 { return dc.maxRes }

// Epsilon returns the crossing tolerance.
func (dc *DualContouring) Epsilon() float32 { return dc.epsilon }

// Depth returns the octree level at which cells reach the configured
// resolution: log2 of MaxResolution.
func (dc *DualContouring) Depth() int {
	return bits.TrailingZeros32(dc.maxRes)
}
