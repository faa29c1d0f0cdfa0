package rtree

import "fmt"

// NodeID is the stable handle of a node. A node keeps its ID for its whole
// lifetime, including when it is reused as the first product of a split.
type NodeID int

// noParent marks the root.
const noParent NodeID = -1

// leafEntry is a point stored in a leaf together with the slot of its value in
// the owning tree's value slice.
type leafEntry struct {
	point Point
	value int
}

// node is a single tree node. Leaves (level 0) hold points, internal nodes
// hold the IDs of the children they own. The parent is a lookup handle only.
type node struct {
	bound    Rect
	level    int
	parent   NodeID
	points   []leafEntry
	children []NodeID
}

func (n *node) isLeaf() bool {
	return n.level == 0
}

// entryCount returns the number of points or children held by n.
func (n *node) entryCount() int {
	if n.isLeaf() {
		return len(n.points)
	}

	return len(n.children)
}

// arena owns every node of a tree. Nodes are never moved or freed, so an ID
// stays valid for as long as the arena lives.
//
// Pointers returned by node are invalidated by newNode.
type arena struct {
	nodes   []node
	minFill int
	maxFill int
}

func newArena(minFill, maxFill int) arena {
	return arena{
		minFill: minFill,
		maxFill: maxFill,
	}
}

func (a *arena) node(id NodeID) *node {
	return &a.nodes[id]
}

// newNode allocates an empty, parentless node at the given level.
func (a *arena) newNode(level int) NodeID {
	n := node{
		level:  level,
		parent: noParent,
	}

	if level == 0 {
		n.points = make([]leafEntry, 0, a.maxFill+1)
	} else {
		n.children = make([]NodeID, 0, a.maxFill+1)
	}

	a.nodes = append(a.nodes, n)

	return NodeID(len(a.nodes) - 1)
}

// entryRects returns the rectangle of every entry of id, in entry order:
// point rectangles for leaves, child bounds for internal nodes.
func (a *arena) entryRects(id NodeID) []Rect {
	n := a.node(id)

	if n.isLeaf() {
		rects := make([]Rect, len(n.points))
		for i, e := range n.points {
			rects[i] = PointRect(e.point)
		}

		return rects
	}

	rects := make([]Rect, len(n.children))
	for i, child := range n.children {
		rects[i] = a.node(child).bound
	}

	return rects
}

// recomputeBound resets the bound of id to the exact cover of its entries.
func (a *arena) recomputeBound(id NodeID) {
	n := a.node(id)

	if n.entryCount() == 0 {
		panic(fmt.Sprintf("rtree: node %d has no entries to bound", id))
	}

	if n.isLeaf() {
		points := make([]Point, len(n.points))
		for i, e := range n.points {
			points[i] = e.point
		}

		n.bound = BoundPoints(points)

		return
	}

	n.bound = BoundRects(a.entryRects(id))
}

// refreshAncestors recomputes the bound of every ancestor of id, bottom-up.
func (a *arena) refreshAncestors(id NodeID) {
	for parent := a.node(id).parent; parent != noParent; parent = a.node(parent).parent {
		a.recomputeBound(parent)
	}
}

// adopt appends child to parent's children and points child back at parent.
func (a *arena) adopt(parent, child NodeID) {
	p := a.node(parent)
	p.children = append(p.children, child)

	a.node(child).parent = parent
}

// checkOverflow panics unless id holds exactly maxFill+1 entries.
func (a *arena) checkOverflow(id NodeID) {
	if count := a.node(id).entryCount(); count != a.maxFill+1 {
		panic(fmt.Sprintf("rtree: split of node %d with %d entries, want %d", id, count, a.maxFill+1))
	}
}
