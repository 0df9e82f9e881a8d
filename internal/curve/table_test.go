package curve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func efficiencyLike(t *testing.T) Table {
	t.Helper()
	tbl, err := New(
		Point{X: 0.25, Y: 0.82},
		Point{X: 0.50, Y: 0.88},
		Point{X: 0.75, Y: 0.90},
		Point{X: 1.00, Y: 0.91},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewRejectsDegenerateCurves(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{name: "empty", points: nil},
		{name: "single point", points: []Point{{X: 0.5, Y: 0.9}}},
		{name: "duplicate x", points: []Point{{X: 0.5, Y: 0.9}, {X: 0.5, Y: 0.91}}},
		{name: "decreasing x", points: []Point{{X: 0.75, Y: 0.9}, {X: 0.5, Y: 0.88}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.points...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCurve), "got %v", err)
		})
	}
}

func TestMustNewPanicsOnInvalidCurve(t *testing.T) {
	assert.Panics(t, func() { MustNew(Point{X: 1, Y: 1}) })
}

func TestLookupAnchorsAreExact(t *testing.T) {
	tbl := efficiencyLike(t)
	for _, p := range tbl.Points() {
		assert.Equal(t, p.Y, tbl.Lookup(p.X), "anchor x=%g", p.X)
	}
}

func TestLookupInterpolatesBetweenAnchors(t *testing.T) {
	tbl := efficiencyLike(t)
	assert.InDelta(t, 0.85, tbl.Lookup(0.375), 1e-12)
	assert.InDelta(t, 0.89, tbl.Lookup(0.625), 1e-12)
	assert.InDelta(t, 0.905, tbl.Lookup(0.875), 1e-12)
}

func TestLookupClamps(t *testing.T) {
	tbl := efficiencyLike(t)
	t.Run("below smallest anchor", func(t *testing.T) {
		for _, x := range []float64{-1, 0, 0.1, 0.2499} {
			assert.Equal(t, 0.82, tbl.Lookup(x), "x=%g", x)
		}
	})
	t.Run("at or above largest anchor", func(t *testing.T) {
		for _, x := range []float64{1, 1.01, 5} {
			assert.Equal(t, 0.91, tbl.Lookup(x), "x=%g", x)
		}
	})
}

func TestLookupIsMonotonic(t *testing.T) {
	increasing := efficiencyLike(t)
	decreasing := MustNew(
		Point{X: 0.25, Y: 0.40},
		Point{X: 0.50, Y: 0.25},
		Point{X: 0.75, Y: 0.10},
		Point{X: 1.00, Y: 0.00},
	)
	prevUp := increasing.Lookup(0)
	prevDown := decreasing.Lookup(0)
	for x := 0.0; x <= 1.2; x += 0.01 {
		up := increasing.Lookup(x)
		down := decreasing.Lookup(x)
		assert.GreaterOrEqual(t, up, prevUp, "x=%g", x)
		assert.LessOrEqual(t, down, prevDown, "x=%g", x)
		prevUp, prevDown = up, down
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	tbl := efficiencyLike(t)
	pts := tbl.Points()
	pts[0].Y = 42
	assert.Equal(t, 0.82, tbl.Lookup(0.25))
	assert.Equal(t, 4, tbl.Len())
}

func TestNewCopiesInput(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	tbl, err := New(pts...)
	require.NoError(t, err)
	pts[1].Y = 100
	assert.Equal(t, 1.0, tbl.Lookup(1))
}
