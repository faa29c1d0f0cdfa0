package rtree

import (
	"fmt"
	"math"
)

// pickSeeds returns the pair of entries that would waste the most area if they
// were covered by a single rectangle, i.e. the worst pair to keep in the same
// node.
//
// Every pair (i, j), i < j, is tried in order and only a strictly larger waste
// replaces the current best, so ties resolve to the first pair enumerated.
func pickSeeds(rects []Rect) (int, int) {
	if len(rects) < 2 {
		panic(fmt.Sprintf("rtree: seed selection over %d entries", len(rects)))
	}

	areas := make([]float64, len(rects))
	for i, r := range rects {
		areas[i] = r.Area()
	}

	var (
		seedA, seedB = 0, 1
		worst        = math.Inf(-1)
	)

	for i := 0; i < len(rects)-1; i++ {
		for j := i + 1; j < len(rects); j++ {
			waste := rects[i].Union(rects[j]).Area() - areas[i] - areas[j]

			if waste > worst {
				worst = waste
				seedA, seedB = i, j
			}
		}
	}

	return seedA, seedB
}
