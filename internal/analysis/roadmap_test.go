package analysis

import (
	"fmt"
	"testing"

	"energy-retrofit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoadmapPhases(t *testing.T) {
	recs := make([]model.Recommendation, 0, 7)
	for i := 0; i < 7; i++ {
		recs = append(recs, model.Recommendation{
			Description:  fmt.Sprintf("measure %d", i+1),
			PaybackYears: 0.2 * float64(i+1),
			Priority:     model.PriorityHigh,
		})
	}
	steps := BuildRoadmap(recs, 2026)
	require.Len(t, steps, 5)

	for i, s := range steps[:3] {
		assert.Equal(t, i+1, s.Rank)
		assert.Equal(t, 2026, s.Year)
		assert.Equal(t, "Phase 1", s.Phase)
	}
	for _, s := range steps[3:] {
		assert.Equal(t, 2027, s.Year)
		assert.Equal(t, "Phase 2", s.Phase)
	}
	assert.Equal(t, "measure 1", steps[0].Action)
	// 0.2 years = 2.4 months
	assert.Equal(t, 2, steps[0].DurationMonths)
	assert.Equal(t, 4, steps[1].DurationMonths)
	assert.Equal(t, 6, steps[4].DurationMonths)
}

func TestBuildRoadmapShortList(t *testing.T) {
	steps := BuildRoadmap([]model.Recommendation{{Description: "x", PaybackYears: 0.01}}, 2026)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].DurationMonths)
	assert.Empty(t, BuildRoadmap(nil, 2026))
}
