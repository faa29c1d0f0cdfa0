package rtree

import "fmt"

// Relevels records which tree levels have already been split during one
// insertion. It is allocated by the caller with one slot per level, threaded
// through the whole split cascade and discarded afterwards.
type Relevels []bool

// NewRelevels returns a flag set for a tree of the given height, with every
// level unmarked.
func NewRelevels(height int) Relevels {
	return make(Relevels, height)
}

// Split reports whether level has been split during this pass.
func (r Relevels) Split(level int) bool {
	return level < len(r) && r[level]
}

// mark flags level as split. A level is split at most once per insertion:
// the cascade only moves upwards, so a level it already processed is never
// reached again, and marking it twice is a broken invariant rather than a
// case to skip.
func (r Relevels) mark(level int) {
	if level >= len(r) {
		panic(fmt.Sprintf("rtree: relevels holds %d levels, split reached level %d", len(r), level))
	}

	if r[level] {
		panic(fmt.Sprintf("rtree: level %d split twice in one insertion", level))
	}

	r[level] = true
}
