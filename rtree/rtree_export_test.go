package rtree

import "slices"

const (
	// DefaultMinFill re-exports [defaultMinFill] for testing purposes.
	DefaultMinFill = defaultMinFill

	// DefaultMaxFill re-exports [defaultMaxFill] for testing purposes.
	DefaultMaxFill = defaultMaxFill
)

// PickSeeds re-exports the internal [pickSeeds] function.
func PickSeeds(rects []Rect) (int, int) {
	return pickSeeds(rects)
}

// Distribute re-exports the internal [distribute] function.
func Distribute(rects []Rect, seedA, seedB, minFill, maxFill int) ([]int, []int) {
	return distribute(rects, seedA, seedB, minFill, maxFill)
}

// AppendPoint adds p to leaf without checking for overflow, leaving the tree
// ready for a manual [Tree.SplitLeafNode].
func (t *Tree[Value]) AppendPoint(leaf NodeID, p Point, value Value) {
	n := t.arena.node(leaf)
	n.points = append(n.points, leafEntry{point: slices.Clone(p), value: len(t.values)})
	t.values = append(t.values, value)

	t.arena.recomputeBound(leaf)
	t.arena.refreshAncestors(leaf)
}

// AttachLeaf creates a leaf holding points under parent without checking the
// parent for overflow, leaving the tree ready for a manual
// [Tree.SplitNonLeafNode].
func (t *Tree[Value]) AttachLeaf(parent NodeID, points []Point, values []Value) NodeID {
	leaf := t.arena.newNode(0)

	for i, p := range points {
		n := t.arena.node(leaf)
		n.points = append(n.points, leafEntry{point: slices.Clone(p), value: len(t.values)})
		t.values = append(t.values, values[i])
	}

	t.arena.recomputeBound(leaf)
	t.arena.adopt(parent, leaf)
	t.arena.recomputeBound(parent)
	t.arena.refreshAncestors(parent)

	return leaf
}
