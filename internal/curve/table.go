package curve

import (
	"github.com/pkg/errors"
)

// ErrInvalidCurve is returned for anchor sets that cannot be interpolated.
var ErrInvalidCurve = errors.New("invalid curve")

// Point is one (x, y) anchor of a piecewise-linear curve.
type Point struct {
	X float64
	Y float64
}

// Table is an immutable piecewise-linear lookup over strictly increasing anchors.
// Queries outside the anchor range clamp to the nearest end.
type Table struct {
	points []Point
}

// New copies points into a Table. At least two anchors with strictly
// increasing X are required.
func New(points ...Point) (Table, error) {
	if len(points) < 2 {
		return Table{}, errors.Wrapf(ErrInvalidCurve, "need at least 2 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if !(points[i].X > points[i-1].X) {
			return Table{}, errors.Wrapf(ErrInvalidCurve, "x must be strictly increasing (point %d: %g after %g)", i, points[i].X, points[i-1].X)
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return Table{points: cp}, nil
}

// MustNew is New for package-level curve tables; it panics on a malformed curve.
func MustNew(points ...Point) Table {
	t, err := New(points...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the linearly interpolated y at x.
// An x equal to an anchor returns that anchor's y exactly.
func (t Table) Lookup(x float64) float64 {
	pts := t.points
	if len(pts) == 0 {
		return 0
	}
	first, last := pts[0], pts[len(pts)-1]
	if x <= first.X {
		return first.Y
	}
	if x >= last.X {
		return last.Y
	}
	for i := 0; i < len(pts)-1; i++ {
		lo, hi := pts[i], pts[i+1]
		if x == lo.X {
			return lo.Y
		}
		if x == hi.X {
			return hi.Y
		}
		if x > lo.X && x < hi.X {
			return lo.Y + (hi.Y-lo.Y)*(x-lo.X)/(hi.X-lo.X)
		}
	}
	return last.Y
}

// Points returns a copy of the anchors.
func (t Table) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Len reports the number of anchors.
func (t Table) Len() int { return len(t.points) }
