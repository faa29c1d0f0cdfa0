package rtree

import (
	"fmt"
	"math"
	"strings"
)

// Point is a coordinate in d-dimensional space.
type Point []float64

// Rect is an axis-aligned bounding rectangle. Min and Max always have the same
// length, and Min[k] <= Max[k] on every axis k.
type Rect struct {
	Min []float64
	Max []float64
}

// PointRect returns the degenerate rectangle covering exactly p.
func PointRect(p Point) Rect {
	return Rect{
		Min: append([]float64(nil), p...),
		Max: append([]float64(nil), p...),
	}
}

// NewRect builds the rectangle spanned by two opposite corners.
func NewRect(a, b Point) (Rect, error) {
	if len(a) != len(b) {
		return Rect{}, fmt.Errorf("corners have %d and %d dimensions: %w", len(a), len(b), ErrDimensionMismatch)
	}

	if err := checkFinite(a); err != nil {
		return Rect{}, err
	}

	if err := checkFinite(b); err != nil {
		return Rect{}, err
	}

	r := Rect{
		Min: make([]float64, len(a)),
		Max: make([]float64, len(a)),
	}

	for k := range a {
		r.Min[k] = math.Min(a[k], b[k])
		r.Max[k] = math.Max(a[k], b[k])
	}

	return r, nil
}

// Dimensions returns the number of axes of r.
func (r Rect) Dimensions() int {
	return len(r.Min)
}

// Area returns the d-dimensional volume of r. Degenerate rectangles have zero
// area.
func (r Rect) Area() float64 {
	area := 1.0

	for k := range r.Min {
		area *= r.Max[k] - r.Min[k]
	}

	return area
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	u := Rect{
		Min: make([]float64, len(r.Min)),
		Max: make([]float64, len(r.Max)),
	}

	for k := range r.Min {
		u.Min[k] = math.Min(r.Min[k], other.Min[k])
		u.Max[k] = math.Max(r.Max[k], other.Max[k])
	}

	return u
}

// Enlargement returns how much r's area grows when it is extended to cover
// other.
func (r Rect) Enlargement(other Rect) float64 {
	return r.Union(other).Area() - r.Area()
}

// Intersects reports whether r and other share at least one point.
func (r Rect) Intersects(other Rect) bool {
	for k := range r.Min {
		if r.Min[k] > other.Max[k] || r.Max[k] < other.Min[k] {
			return false
		}
	}

	return true
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	for k := range r.Min {
		if other.Min[k] < r.Min[k] || other.Max[k] > r.Max[k] {
			return false
		}
	}

	return true
}

// ContainsPoint reports whether p lies within r.
func (r Rect) ContainsPoint(p Point) bool {
	for k := range r.Min {
		if p[k] < r.Min[k] || p[k] > r.Max[k] {
			return false
		}
	}

	return true
}

// Equal reports whether r and other cover exactly the same region.
func (r Rect) Equal(other Rect) bool {
	if len(r.Min) != len(other.Min) {
		return false
	}

	for k := range r.Min {
		if r.Min[k] != other.Min[k] || r.Max[k] != other.Max[k] {
			return false
		}
	}

	return true
}

func (r Rect) clone() Rect {
	return Rect{
		Min: append([]float64(nil), r.Min...),
		Max: append([]float64(nil), r.Max...),
	}
}

// String formats r as "(min)-(max)".
func (r Rect) String() string {
	return formatCoords(r.Min) + "-" + formatCoords(r.Max)
}

// String formats p as "(x, y, ...)".
func (p Point) String() string {
	return formatCoords(p)
}

func formatCoords(coords []float64) string {
	parts := make([]string, len(coords))

	for k, c := range coords {
		parts[k] = fmt.Sprintf("%g", c)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// BoundPoints returns the minimal rectangle covering every point. It returns
// the zero Rect when points is empty.
func BoundPoints(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	bound := PointRect(points[0])

	for _, p := range points[1:] {
		for k := range p {
			bound.Min[k] = math.Min(bound.Min[k], p[k])
			bound.Max[k] = math.Max(bound.Max[k], p[k])
		}
	}

	return bound
}

// BoundRects returns the minimal rectangle covering every rectangle. It
// returns the zero Rect when rects is empty.
func BoundRects(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}

	bound := rects[0].clone()

	for _, r := range rects[1:] {
		bound = bound.Union(r)
	}

	return bound
}

// checkFinite rejects points with a NaN or infinite coordinate.
func checkFinite(p Point) error {
	for k, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("point %v: coordinate %d is %g: %w", p, k, v, ErrInvalidPoint)
		}
	}

	return nil
}
