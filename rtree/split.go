package rtree

import "fmt"

// SplitLeafNode splits a leaf that has just grown to MaxFill+1 points.
//
// The leaf keeps its NodeID and holds the first group; a newly allocated
// sibling leaf holds the second. The sibling is then inserted into the leaf's
// parent, which may split in turn all the way up to the root. Level 0 is
// marked in relevels.
//
// SplitLeafNode panics if leaf is not an overflowing leaf.
func (t *Tree[Value]) SplitLeafNode(leaf NodeID, relevels Relevels) {
	if !t.arena.node(leaf).isLeaf() {
		panic(fmt.Sprintf("rtree: SplitLeafNode on internal node %d", leaf))
	}

	t.arena.checkOverflow(leaf)
	relevels.mark(0)

	rects := t.arena.entryRects(leaf)
	seedA, seedB := pickSeeds(rects)
	groupA, groupB := distribute(rects, seedA, seedB, t.cfg.MinFill, t.cfg.MaxFill)

	entries := t.arena.node(leaf).points
	sibling := t.arena.newNode(0)

	t.arena.node(leaf).points = pickEntries(entries, groupA)
	t.arena.node(sibling).points = pickEntries(entries, groupB)

	t.arena.recomputeBound(leaf)
	t.arena.recomputeBound(sibling)

	t.stats.LeafSplits++
	t.log.Debug("split leaf",
		"node", leaf,
		"sibling", sibling,
		"seeds", []int{seedA, seedB},
		"left", len(groupA),
		"right", len(groupB),
	)

	t.propagate(leaf, sibling, relevels)
}

// SplitNonLeafNode splits an internal node that has just grown to MaxFill+1
// children. Children moved to the new sibling are reparented to it.
//
// As with [Tree.SplitLeafNode], node keeps its NodeID and the first group. If
// node is the root, a new root owning exactly node and its sibling is created
// and SplitNonLeafNode returns true; this is the only way the tree grows in
// height. Otherwise the sibling is inserted into node's parent and the result
// reports whether that cascade replaced the root.
//
// SplitNonLeafNode panics if node is a leaf or is not overflowing.
func (t *Tree[Value]) SplitNonLeafNode(node NodeID, relevels Relevels) bool {
	n := t.arena.node(node)
	if n.isLeaf() {
		panic(fmt.Sprintf("rtree: SplitNonLeafNode on leaf %d", node))
	}

	level := n.level

	t.arena.checkOverflow(node)
	relevels.mark(level)

	rects := t.arena.entryRects(node)
	seedA, seedB := pickSeeds(rects)
	groupA, groupB := distribute(rects, seedA, seedB, t.cfg.MinFill, t.cfg.MaxFill)

	children := t.arena.node(node).children
	sibling := t.arena.newNode(level)

	t.arena.node(node).children = pickEntries(children, groupA)

	for _, child := range pickEntries(children, groupB) {
		t.arena.adopt(sibling, child)
	}

	t.arena.recomputeBound(node)
	t.arena.recomputeBound(sibling)

	t.stats.InternalSplits++
	t.log.Debug("split internal node",
		"node", node,
		"sibling", sibling,
		"level", level,
		"left", len(groupA),
		"right", len(groupB),
	)

	return t.propagate(node, sibling, relevels)
}

// propagate hands the sibling produced by splitting node to node's parent, or
// grows a new root when node has none. It reports whether the root was
// replaced.
func (t *Tree[Value]) propagate(node, sibling NodeID, relevels Relevels) bool {
	parent := t.arena.node(node).parent

	if parent == noParent {
		t.growRoot(node, sibling)

		return true
	}

	return t.insertNodeIntoParent(parent, sibling, relevels)
}

// insertNodeIntoParent adds sibling as a child of parent and recomputes the
// parent's bound. An overflowing parent is split with the same relevels;
// otherwise the remaining ancestors' bounds are refreshed.
func (t *Tree[Value]) insertNodeIntoParent(parent, sibling NodeID, relevels Relevels) bool {
	t.arena.adopt(parent, sibling)
	t.arena.recomputeBound(parent)

	t.log.Debug("propagated split",
		"parent", parent,
		"sibling", sibling,
		"children", len(t.arena.node(parent).children),
	)

	if len(t.arena.node(parent).children) > t.cfg.MaxFill {
		return t.SplitNonLeafNode(parent, relevels)
	}

	t.arena.refreshAncestors(parent)

	return false
}

// growRoot replaces the root, which has just been split into oldRoot and
// sibling, with a new root one level higher owning exactly those two nodes.
func (t *Tree[Value]) growRoot(oldRoot, sibling NodeID) {
	level := t.arena.node(oldRoot).level + 1
	root := t.arena.newNode(level)

	t.arena.adopt(root, oldRoot)
	t.arena.adopt(root, sibling)
	t.arena.recomputeBound(root)

	t.root = root
	t.stats.RootSplits++

	t.log.Debug("grew root",
		"root", root,
		"height", level+1,
	)
}

// pickEntries returns entries[i] for every i in indices, in order.
func pickEntries[E any](entries []E, indices []int) []E {
	picked := make([]E, 0, len(indices))

	for _, i := range indices {
		picked = append(picked, entries[i])
	}

	return picked
}
