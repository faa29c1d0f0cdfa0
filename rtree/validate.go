package rtree

import "fmt"

// Validate walks the whole tree and returns an error wrapping [ErrCorrupt] for
// the first broken invariant it finds:
//   - every non-root node holds between MinFill and MaxFill entries
//   - every bound is the exact cover of its node's entries
//   - every child points back at the node that owns it
//   - children sit exactly one level below their parent, so all leaves share
//     the same depth
//   - every stored value is reachable from exactly one leaf
func (t *Tree[Value]) Validate() error {
	root := t.arena.node(t.root)
	if root.parent != noParent {
		return fmt.Errorf("root %d has parent %d: %w", t.root, root.parent, ErrCorrupt)
	}

	seen := make([]bool, len(t.values))

	if err := t.validateNode(t.root, seen); err != nil {
		return err
	}

	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("value %d is not held by any leaf: %w", i, ErrCorrupt)
		}
	}

	return nil
}

func (t *Tree[Value]) validateNode(id NodeID, seen []bool) error {
	n := t.arena.node(id)
	count := n.entryCount()

	if count > t.cfg.MaxFill {
		return fmt.Errorf("node %d holds %d entries, max %d: %w", id, count, t.cfg.MaxFill, ErrCorrupt)
	}

	if id != t.root && count < t.cfg.MinFill {
		return fmt.Errorf("node %d holds %d entries, min %d: %w", id, count, t.cfg.MinFill, ErrCorrupt)
	}

	if n.isLeaf() && len(n.children) != 0 {
		return fmt.Errorf("leaf %d owns children: %w", id, ErrCorrupt)
	}

	if !n.isLeaf() && len(n.points) != 0 {
		return fmt.Errorf("internal node %d holds points: %w", id, ErrCorrupt)
	}

	if count == 0 {
		if id != t.root || t.Len() != 0 {
			return fmt.Errorf("node %d is empty: %w", id, ErrCorrupt)
		}

		return nil
	}

	if cover := BoundRects(t.arena.entryRects(id)); !cover.Equal(n.bound) {
		return fmt.Errorf("node %d bound %v, entries cover %v: %w", id, n.bound, cover, ErrCorrupt)
	}

	for _, e := range n.points {
		if e.value < 0 || e.value >= len(seen) || seen[e.value] {
			return fmt.Errorf("leaf %d holds value slot %d more than once or out of range: %w", id, e.value, ErrCorrupt)
		}

		seen[e.value] = true
	}

	for _, child := range n.children {
		c := t.arena.node(child)

		if c.parent != id {
			return fmt.Errorf("node %d owned by %d points at parent %d: %w", child, id, c.parent, ErrCorrupt)
		}

		if c.level != n.level-1 {
			return fmt.Errorf("node %d at level %d under node %d at level %d: %w", child, c.level, id, n.level, ErrCorrupt)
		}

		if err := t.validateNode(child, seen); err != nil {
			return err
		}
	}

	return nil
}
