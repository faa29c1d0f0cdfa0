package rtree

import (
	"fmt"
	"math"
)

// group is one side of a split under construction.
type group struct {
	members []int
	bound   Rect
}

func newGroup(seed int, r Rect) group {
	return group{
		members: []int{seed},
		bound:   r.clone(),
	}
}

func (g *group) add(index int, r Rect) {
	g.members = append(g.members, index)
	g.bound = g.bound.Union(r)
}

// distribute partitions the entries described by rects into two groups, the
// first grown from seedA and the second from seedB. It returns the entry
// indices of each group in the order they were assigned.
//
// While neither group is forced, the unassigned entry with the strongest
// preference for one group (the largest difference in enlargement) is placed
// next, ties going to the lowest index. It joins the group it enlarges least;
// equal enlargements go to the group with the smaller resulting area, then the
// smaller group, then the first group.
//
// A group that can only reach minFill by taking every remaining entry takes
// them all, lowest index first.
func distribute(rects []Rect, seedA, seedB, minFill, maxFill int) ([]int, []int) {
	if seedA == seedB {
		panic(fmt.Sprintf("rtree: both seeds are entry %d", seedA))
	}

	assigned := make([]bool, len(rects))
	assigned[seedA] = true
	assigned[seedB] = true

	groups := [2]group{
		newGroup(seedA, rects[seedA]),
		newGroup(seedB, rects[seedB]),
	}

	for remaining := len(rects) - 2; remaining > 0; remaining-- {
		if target, ok := forcedGroup(&groups, remaining, minFill); ok {
			for index := range rects {
				if !assigned[index] {
					assigned[index] = true
					groups[target].add(index, rects[index])
				}
			}

			break
		}

		chosen, preference := -1, math.Inf(-1)

		for index, r := range rects {
			if assigned[index] {
				continue
			}

			diff := math.Abs(groups[0].bound.Enlargement(r) - groups[1].bound.Enlargement(r))

			// Enlargements of Inf give a NaN difference, which never wins.
			if chosen < 0 {
				chosen = index
			}

			if diff > preference {
				chosen, preference = index, diff
			}
		}

		target := chooseGroup(&groups, rects[chosen])

		assigned[chosen] = true
		groups[target].add(chosen, rects[chosen])
	}

	checkPartition(len(rects), groups[0].members, groups[1].members, minFill, maxFill)

	return groups[0].members, groups[1].members
}

// forcedGroup reports the group, if any, that needs every remaining entry to
// reach minFill.
func forcedGroup(groups *[2]group, remaining, minFill int) (int, bool) {
	for g := range groups {
		if minFill-len(groups[g].members) >= remaining {
			return g, true
		}
	}

	return 0, false
}

// chooseGroup picks the group r should join.
func chooseGroup(groups *[2]group, r Rect) int {
	growA := groups[0].bound.Enlargement(r)
	growB := groups[1].bound.Enlargement(r)

	switch {
	case growA < growB:
		return 0
	case growB < growA:
		return 1
	}

	areaA := groups[0].bound.Union(r).Area()
	areaB := groups[1].bound.Union(r).Area()

	switch {
	case areaA < areaB:
		return 0
	case areaB < areaA:
		return 1
	}

	if len(groups[1].members) < len(groups[0].members) {
		return 1
	}

	return 0
}

// checkPartition panics unless a and b together hold every index in [0, n)
// exactly once and both sizes lie in [minFill, maxFill].
func checkPartition(n int, a, b []int, minFill, maxFill int) {
	if len(a)+len(b) != n {
		panic(fmt.Sprintf("rtree: split of %d entries produced %d + %d", n, len(a), len(b)))
	}

	for _, size := range []int{len(a), len(b)} {
		if size < minFill || size > maxFill {
			panic(fmt.Sprintf("rtree: split group of %d entries outside [%d, %d]", size, minFill, maxFill))
		}
	}

	seen := make([]bool, n)

	for _, members := range [][]int{a, b} {
		for _, index := range members {
			if seen[index] {
				panic(fmt.Sprintf("rtree: entry %d assigned twice", index))
			}

			seen[index] = true
		}
	}
}
