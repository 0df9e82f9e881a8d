package analysis

import (
	"math"

	"energy-retrofit/internal/model"
)

const (
	roadmapLength     = 5
	phaseOneMeasures  = 3
	maxDurationMonths = 6
)

// RoadmapStep schedules one recommendation.
type RoadmapStep struct {
	Rank           int            `json:"rank"`
	Year           int            `json:"year"`
	Phase          string         `json:"phase"`
	Action         string         `json:"action"`
	DurationMonths int            `json:"duration_months"`
	Priority       model.Priority `json:"priority"`
}

// BuildRoadmap phases the top recommendations: the first three start in
// startYear, the next two a year later. Each step lasts min(6, payback in
// whole months) months.
func BuildRoadmap(recs []model.Recommendation, startYear int) []RoadmapStep {
	n := len(recs)
	if n > roadmapLength {
		n = roadmapLength
	}
	steps := make([]RoadmapStep, 0, n)
	for i, rec := range recs[:n] {
		step := RoadmapStep{
			Rank:           i + 1,
			Year:           startYear,
			Phase:          "Phase 1",
			Action:         rec.Description,
			DurationMonths: durationMonths(rec.PaybackYears),
			Priority:       rec.Priority,
		}
		if i >= phaseOneMeasures {
			step.Year = startYear + 1
			step.Phase = "Phase 2"
		}
		steps = append(steps, step)
	}
	return steps
}

func durationMonths(paybackYears float64) int {
	m := int(math.Floor(paybackYears * 12))
	if m > maxDurationMonths {
		return maxDurationMonths
	}
	if m < 1 {
		return 1
	}
	return m
}
