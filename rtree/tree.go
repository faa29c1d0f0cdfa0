package rtree

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Stats counts the splits performed over the lifetime of a tree.
type Stats struct {
	// LeafSplits is the number of leaf splits.
	LeafSplits int

	// InternalSplits is the number of internal node splits.
	InternalSplits int

	// RootSplits is the number of times the root was split and the tree grew
	// by one level.
	RootSplits int
}

// Splits returns the total number of node splits.
func (s Stats) Splits() int {
	return s.LeafSplits + s.InternalSplits
}

// Tree is an R-tree of points, each carrying a value.
//
// It stores the points in a tree of nodes, and the values in a separate slice.
// A Tree is not safe for concurrent use; callers must serialise mutations.
type Tree[Value any] struct {
	cfg    Config
	log    *slog.Logger
	arena  arena
	root   NodeID
	values []Value
	stats  Stats
}

// New creates an empty tree with a single empty root leaf.
func New[Value any](cfg Config) (*Tree[Value], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Tree[Value]{
		cfg:   cfg,
		log:   cfg.logger(),
		arena: newArena(cfg.MinFill, cfg.MaxFill),
	}

	t.root = t.arena.newNode(0)

	return t, nil
}

// Insert adds p to the tree with the given value.
//
// The point goes into the leaf whose bound needs the least enlargement to
// cover it. If that leaf overflows it is split, and the split may cascade up
// to the root.
func (t *Tree[Value]) Insert(p Point, value Value) error {
	if len(p) != t.cfg.Dimensions {
		return fmt.Errorf("point %v has %d dimensions, tree has %d: %w", p, len(p), t.cfg.Dimensions, ErrDimensionMismatch)
	}

	if err := checkFinite(p); err != nil {
		return err
	}

	valuesIndex := len(t.values)
	t.values = append(t.values, value)

	leaf := t.chooseLeaf(PointRect(p))

	n := t.arena.node(leaf)
	n.points = append(n.points, leafEntry{
		point: slices.Clone(p),
		value: valuesIndex,
	})

	t.arena.recomputeBound(leaf)
	t.arena.refreshAncestors(leaf)

	if len(n.points) > t.cfg.MaxFill {
		t.SplitLeafNode(leaf, NewRelevels(t.Height()))
	}

	return nil
}

// chooseLeaf descends from the root, at each level following the child whose
// bound needs the least enlargement to cover r. Ties go to the child with the
// smaller area, then to the earlier child.
func (t *Tree[Value]) chooseLeaf(r Rect) NodeID {
	current := t.root

	for {
		n := t.arena.node(current)
		if n.isLeaf() {
			return current
		}

		best := n.children[0]
		bestBound := t.arena.node(best).bound
		bestGrowth := bestBound.Enlargement(r)

		for _, child := range n.children[1:] {
			bound := t.arena.node(child).bound
			growth := bound.Enlargement(r)

			if growth < bestGrowth || (growth == bestGrowth && bound.Area() < bestBound.Area()) {
				best, bestBound, bestGrowth = child, bound, growth
			}
		}

		current = best
	}
}

// Search returns the values of all points that lie within r. The bool is
// false when nothing matched, including when r has the wrong number of
// dimensions.
func (t *Tree[Value]) Search(r Rect) ([]Value, bool) {
	if r.Dimensions() != t.cfg.Dimensions || t.Len() == 0 {
		return nil, false
	}

	var values []Value

	var recurse func(id NodeID)
	recurse = func(id NodeID) {
		n := t.arena.node(id)

		if n.isLeaf() {
			for _, e := range n.points {
				if r.ContainsPoint(e.point) {
					values = append(values, t.values[e.value])
				}
			}

			return
		}

		for _, child := range n.children {
			if t.arena.node(child).bound.Intersects(r) {
				recurse(child)
			}
		}
	}

	recurse(t.root)

	if len(values) == 0 {
		return nil, false
	}

	return values, true
}

// All returns an iterator over every point and its value, leaf by leaf in
// depth-first order.
func (t *Tree[Value]) All() iter.Seq2[Point, Value] {
	return func(yield func(Point, Value) bool) {
		var walk func(id NodeID) bool
		walk = func(id NodeID) bool {
			n := t.arena.node(id)

			for _, e := range n.points {
				if !yield(slices.Clone(e.point), t.values[e.value]) {
					return false
				}
			}

			for _, child := range n.children {
				if !walk(child) {
					return false
				}
			}

			return true
		}

		walk(t.root)
	}
}

// Len returns the number of points in the tree.
func (t *Tree[Value]) Len() int {
	return len(t.values)
}

// Height returns the number of levels in the tree. A tree whose root is a leaf
// has height 1.
func (t *Tree[Value]) Height() int {
	return t.arena.node(t.root).level + 1
}

// Root returns the ID of the current root.
func (t *Tree[Value]) Root() NodeID {
	return t.root
}

// Config returns the configuration the tree was created with.
func (t *Tree[Value]) Config() Config {
	return t.cfg
}

// Stats returns the split counters.
func (t *Tree[Value]) Stats() Stats {
	return t.stats
}

// Bound returns the bounding rectangle of node id.
func (t *Tree[Value]) Bound(id NodeID) Rect {
	return t.arena.node(id).bound.clone()
}

// Level returns the level of node id; leaves are at level 0.
func (t *Tree[Value]) Level(id NodeID) int {
	return t.arena.node(id).level
}

// Parent returns the parent of node id, or false for the root.
func (t *Tree[Value]) Parent(id NodeID) (NodeID, bool) {
	parent := t.arena.node(id).parent

	return parent, parent != noParent
}

// Children returns the children of an internal node, or nil for a leaf.
func (t *Tree[Value]) Children(id NodeID) []NodeID {
	return slices.Clone(t.arena.node(id).children)
}

// Points returns the points held by a leaf, or nil for an internal node.
func (t *Tree[Value]) Points(id NodeID) []Point {
	n := t.arena.node(id)
	if !n.isLeaf() {
		return nil
	}

	points := make([]Point, len(n.points))
	for i, e := range n.points {
		points[i] = slices.Clone(e.point)
	}

	return points
}

// Values returns the values of the points held by a leaf, in the same order
// as [Tree.Points].
func (t *Tree[Value]) Values(id NodeID) []Value {
	n := t.arena.node(id)
	if !n.isLeaf() {
		return nil
	}

	values := make([]Value, len(n.points))
	for i, e := range n.points {
		values[i] = t.values[e.value]
	}

	return values
}
