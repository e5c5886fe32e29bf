package octree

import "github.com/chazu/contour/pkg/geom"

// Cell is an octree node identified by its Morton key.
type Cell struct {
	key Key
}

// NewCell builds a cell from a key. It reports false for the reserved
// "no cell" key; callers must check for absence rather than rely on an
// error.
func NewCell(key Key) (Cell, bool) {
	if key.IsNone() {
		return Cell{}, false
	}
	return Cell{key: key}, true
}

// Root returns the root cell.
func Root() Cell { return Cell{key: RootKey()} }

// Key returns the Morton key identifying this cell.
func (c Cell) Key() Key { return c.key }

// Level returns the cell's depth below the root.
func (c Cell) Level() int { return c.key.Level() }

// subCell descends to the child at the given corner. The caller must
// ensure c is not a leaf for the result to be meaningful.
func (c Cell) subCell(corner geom.Corner) Cell {
	return Cell{key: c.key.Child(corner)}
}

// SubCells returns the 8 children of this cell, in corner-mask
// enumeration order.
func (c Cell) SubCells() [8]Cell {
	var subs [8]Cell
	for i, corner := range geom.Corners {
		subs[i] = c.subCell(corner)
	}
	return subs
}

// InteriorFaces returns the 12 faces between face-adjacent pairs of
// this cell's sub-cells, one per geometry edge of the parent cube.
func (c Cell) InteriorFaces() [12]Face {
	var faces [12]Face
	for i, edge := range geom.Edges {
		faces[i] = faceFromEdge(c, edge)
	}
	return faces
}

// InteriorEdges returns the 6 edges each shared by 4 of this cell's
// sub-cells, one per geometry face of the parent cube.
func (c Cell) InteriorEdges() [6]Edge {
	var edges [6]Edge
	for i, face := range geom.Faces {
		edges[i] = edgeFromFace(c, face)
	}
	return edges
}

// faceSubCells returns the 4 sub-cells adjacent to the given face of
// this cell.
func (c Cell) faceSubCells(face geom.Face) [4]Cell {
	var cells [4]Cell
	for i, corner := range face.Corners() {
		cells[i] = c.subCell(corner)
	}
	return cells
}

// edgeSubCells returns the 2 sub-cells at the endpoints of the given
// edge of this cell.
func (c Cell) edgeSubCells(edge geom.Edge) [2]Cell {
	ends := edge.Endpoints()
	return [2]Cell{c.subCell(ends[0]), c.subCell(ends[1])}
}

// Face is the boundary between two face-adjacent sub-cells of a
// parent cell. The neighbor on the negative side of the normal axis
// comes first.
type Face struct {
	normal    geom.Axis
	neighbors [2]Cell
}

func faceFromEdge(cell Cell, edge geom.Edge) Face {
	return Face{
		normal:    edge.Axis(),
		neighbors: cell.edgeSubCells(edge),
	}
}

// Normal returns the face's normal axis.
func (f Face) Normal() geom.Axis { return f.normal }

// Neighbors returns the two cells sharing this face, negative side
// first.
func (f Face) Neighbors() [2]Cell { return f.neighbors }

// SubFaces splits this face into the 4 finer faces one level down.
// A neighbor the predicate marks as a leaf is not descended into and
// borders all 4 sub-faces itself. If both neighbors are leaves there
// is nothing to refine and SubFaces reports false.
func (f Face) SubFaces(isLeaf func(Cell) bool) ([4]Face, bool) {
	leafA, leafB := isLeaf(f.neighbors[0]), isLeaf(f.neighbors[1])
	if leafA && leafB {
		return [4]Face{}, false
	}

	dir := f.normal.Dir()
	negFace := f.normal.Faces()[0]

	var subs [4]Face
	for i, corner := range negFace.Corners() {
		a := f.neighbors[0]
		if !leafA {
			// A touches the shared face with its children on the
			// positive side of the axis.
			a = a.subCell(geom.Corner{Mask: corner.Mask.Step(dir.Mask())})
		}
		b := f.neighbors[1]
		if !leafB {
			b = b.subCell(corner)
		}
		subs[i] = Face{normal: f.normal, neighbors: [2]Cell{a, b}}
	}
	return subs, true
}

// Edge is the line shared by four sub-cells of a parent cell. Along
// with each neighbor it records the neighbor's corner position
// relative to the edge, so refinement stays purely combinatorial.
type Edge struct {
	axis      geom.Axis
	neighbors [4]Cell
	corners   [4]geom.Corner
}

func edgeFromFace(cell Cell, face geom.Face) Edge {
	return Edge{
		axis:      face.NormalAxis(),
		neighbors: cell.faceSubCells(face),
		corners:   face.Corners(),
	}
}

// Axis returns the axis the edge runs along.
func (e Edge) Axis() geom.Axis { return e.axis }

// Neighbors returns the four cells sharing this edge.
func (e Edge) Neighbors() [4]Cell { return e.neighbors }

// SubEdges splits this edge into its 2 finer halves along its axis.
// A neighbor the predicate marks as a leaf is not descended into and
// borders both halves itself. If all four neighbors are leaves there
// is nothing to refine and SubEdges reports false.
func (e Edge) SubEdges(isLeaf func(Cell) bool) ([2]Edge, bool) {
	var leaf [4]bool
	refine := false
	for i, n := range e.neighbors {
		leaf[i] = isLeaf(n)
		refine = refine || !leaf[i]
	}
	if !refine {
		return [2]Edge{}, false
	}

	axisBit := e.axis.Dir().Mask()
	perp := geom.MaskXYZ &^ axisBit

	var subs [2]Edge
	for half := range subs {
		sub := Edge{axis: e.axis, corners: e.corners}
		for i, n := range e.neighbors {
			if !leaf[i] {
				// The child of a neighbor touching the edge sits
				// diagonally opposite the neighbor's own position in
				// the plane perpendicular to the edge axis.
				mask := (e.corners[i].Mask ^ perp) &^ axisBit
				if half == 1 {
					mask |= axisBit
				}
				n = n.subCell(geom.Corner{Mask: mask})
			}
			sub.neighbors[i] = n
		}
		subs[half] = sub
	}
	return subs, true
}
