package rtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Render draws the tree, one branch per node, with leaves listing their
// points.
func (t *Tree[Value]) Render() string {
	return t.toTree().String()
}

// Fprint writes [Tree.Render] to w.
func (t *Tree[Value]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.Render())

	return err
}

func (t *Tree[Value]) toTree() treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(t.label(t.root))

	t.addBranches(tree, t.root)

	return tree
}

func (t *Tree[Value]) addBranches(branch treeprint.Tree, id NodeID) {
	n := t.arena.node(id)

	for _, e := range n.points {
		branch.AddNode(fmt.Sprintf("%v = %v", e.point, t.values[e.value]))
	}

	for _, child := range n.children {
		t.addBranches(branch.AddBranch(t.label(child)), child)
	}
}

func (t *Tree[Value]) label(id NodeID) string {
	n := t.arena.node(id)

	kind := "node"
	if n.isLeaf() {
		kind = "leaf"
	}

	if n.entryCount() == 0 {
		return fmt.Sprintf("%s %d (empty)", kind, id)
	}

	return fmt.Sprintf("%s %d level=%d entries=%d bound=%v", kind, id, n.level, n.entryCount(), n.bound)
}
