// Package octree gives octree cells a compact bit-packed identity and
// derives the face and edge adjacency between the sub-cells of a cell.
// Adjacency comes purely from the geom tables; the package never does
// coordinate arithmetic.
package octree

import (
	"math/bits"

	"github.com/chazu/contour/pkg/geom"
)

// Key is a Morton-style path code identifying an octree cell: 3 bits
// per level, each group a corner mask recording the child selected on
// the way down from the root. A sentinel 1 bit sits above the groups
// so that depth is recoverable and the root is distinct from the zero
// "no cell" value.
type Key uint64

// KeyNone is the reserved "no cell" key. It is never produced by
// descending from the root.
const KeyNone Key = 0

// MaxLevel is the deepest level a 64-bit key can encode: one bit is
// spent on the sentinel, three per level on the path.
const MaxLevel = (64 - 1) / 3

// RootKey returns the key of the root cell.
func RootKey() Key { return 1 }

// IsNone reports whether this is the reserved "no cell" key.
func (k Key) IsNone() bool { return k == KeyNone }

// Child descends one level to the sub-cell at the given corner.
// Descending below MaxLevel overflows the key; the caller bounds the
// depth (see contour.DualContouring.Depth).
func (k Key) Child(c geom.Corner) Key {
	return k<<3 | Key(c.Mask.Bits())
}

// Parent ascends one level. The root's parent is KeyNone.
func (k Key) Parent() Key { return k >> 3 }

// Level returns the depth of the cell this key denotes: 0 for the
// root, increasing by one per Child step.
func (k Key) Level() int {
	if k.IsNone() {
		return 0
	}
	return (bits.Len64(uint64(k)) - 1) / 3
}
