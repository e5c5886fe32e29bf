// Package geom encodes the fixed combinatorial structure of a cube:
// which corners bound which face, which axis an edge or face aligns
// with, and how corners combine into edges. Everything here is a
// constant table; adjacency is never computed from coordinates.
package geom

import "fmt"

// Mask3 selects one of a cube's 8 corners via three independent bit
// lanes: X=1, Y=2, Z=4. Only the low 3 bits are meaningful.
type Mask3 uint8

const (
	MaskO Mask3 = 0

	MaskX Mask3 = 1 << 0
	MaskY Mask3 = 1 << 1
	MaskZ Mask3 = 1 << 2

	MaskXY  = MaskX | MaskY
	MaskXZ  = MaskX | MaskZ
	MaskYZ  = MaskY | MaskZ
	MaskXYZ = MaskX | MaskY | MaskZ
)

// Bits returns the raw 3-bit value.
func (m Mask3) Bits() uint8 { return uint8(m) }

// Step moves from this corner to an adjacent one by setting the given
// axis bits.
func (m Mask3) Step(step Mask3) Mask3 { return m | step }

// Direction is one of the three axis-aligned unit directions. Its
// value is the corresponding single-bit corner mask.
type Direction uint8

const (
	DirX = Direction(MaskX)
	DirY = Direction(MaskY)
	DirZ = Direction(MaskZ)
)

// Axis returns the axis this direction runs along.
func (d Direction) Axis() Axis {
	switch d {
	case DirX:
		return AxisX
	case DirY:
		return AxisY
	default:
		return AxisZ
	}
}

// Mask returns the direction as a corner-mask step.
func (d Direction) Mask() Mask3 { return Mask3(d) }

// Axis identifies one of the three coordinate axes.
type Axis uint8

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// Dir returns the positive direction along this axis.
func (a Axis) Dir() Direction {
	switch a {
	case AxisX:
		return DirX
	case AxisY:
		return DirY
	default:
		return DirZ
	}
}

// Faces returns the two opposing cube faces perpendicular to this
// axis, negative side first.
func (a Axis) Faces() [2]Face {
	switch a {
	case AxisX:
		return [2]Face{FaceLeft, FaceRight}
	case AxisY:
		return [2]Face{FaceBottom, FaceTop}
	default:
		return [2]Face{FaceBack, FaceFront}
	}
}

// Face identifies one of a cube's 6 faces.
type Face uint8

const (
	FaceLeft   Face = 0
	FaceRight  Face = 1
	FaceBottom Face = 2
	FaceTop    Face = 3
	FaceBack   Face = 4
	FaceFront  Face = 5
)

// Faces lists all 6 cube faces.
var Faces = [6]Face{
	FaceLeft, FaceRight,
	FaceBottom, FaceTop,
	FaceBack, FaceFront,
}

// NormalAxis returns the axis perpendicular to this face.
func (f Face) NormalAxis() Axis {
	switch f {
	case FaceLeft, FaceRight:
		return AxisX
	case FaceBottom, FaceTop:
		return AxisY
	default:
		return AxisZ
	}
}

// Corners returns the 4 corners bounding this face, in a fixed winding
// order: counter-clockwise as seen from outside the cube.
func (f Face) Corners() [4]Corner {
	switch f {
	case FaceLeft:
		return [4]Corner{{MaskO}, {MaskZ}, {MaskYZ}, {MaskY}}
	case FaceRight:
		return [4]Corner{{MaskX}, {MaskXY}, {MaskXYZ}, {MaskXZ}}
	case FaceBottom:
		return [4]Corner{{MaskO}, {MaskX}, {MaskXZ}, {MaskZ}}
	case FaceTop:
		return [4]Corner{{MaskY}, {MaskYZ}, {MaskXYZ}, {MaskXY}}
	case FaceBack:
		return [4]Corner{{MaskO}, {MaskY}, {MaskXY}, {MaskX}}
	default: // FaceFront
		return [4]Corner{{MaskZ}, {MaskXZ}, {MaskXYZ}, {MaskYZ}}
	}
}

// Corner identifies one of a cube's 8 corners by its mask.
type Corner struct {
	Mask Mask3
}

// Corners lists all 8 cube corners in mask enumeration order.
var Corners = [8]Corner{
	{MaskO}, {MaskX}, {MaskY}, {MaskZ},
	{MaskXY}, {MaskXZ}, {MaskYZ}, {MaskXYZ},
}

// Edge is one of a cube's 12 edges, identified by its start corner and
// the direction toward its other endpoint. The start corner can never
// be the far corner (XYZ): an edge must step toward it, not from it.
type Edge struct {
	start Corner
	dir   Direction
}

// NewEdge builds an edge from a start corner and a direction. It
// fails if start is the far corner, which no edge can begin at.
func NewEdge(start Corner, dir Direction) (Edge, error) {
	if start.Mask == MaskXYZ {
		return Edge{}, fmt.Errorf("geom: edge cannot start at the far corner (mask %#b)", start.Mask)
	}
	return Edge{start: start, dir: dir}, nil
}

// Edges lists all 12 cube edges: 4 per axis.
var Edges = [12]Edge{
	{Corner{MaskO}, DirX},
	{Corner{MaskO}, DirY},
	{Corner{MaskO}, DirZ},
	{Corner{MaskX}, DirY},
	{Corner{MaskX}, DirZ},
	{Corner{MaskY}, DirX},
	{Corner{MaskY}, DirZ},
	{Corner{MaskZ}, DirX},
	{Corner{MaskZ}, DirY},
	{Corner{MaskXY}, DirZ},
	{Corner{MaskXZ}, DirY},
	{Corner{MaskYZ}, DirX},
}

// Start returns the edge's start corner.
func (e Edge) Start() Corner { return e.start }

// Dir returns the direction from the start corner to the end corner.
func (e Edge) Dir() Direction { return e.dir }

// Axis returns the axis this edge runs along.
func (e Edge) Axis() Axis { return e.dir.Axis() }

// Endpoints returns the edge's two corners, start first.
func (e Edge) Endpoints() [2]Corner {
	return [2]Corner{e.start, {e.start.Mask.Step(e.dir.Mask())}}
}
