package simulation

// DefaultHorizonYears is the projection length when none is requested.
const DefaultHorizonYears = 10

// ProjectionYear is one row of the cumulative cash-flow view.
type ProjectionYear struct {
	Year                 int     `json:"year"`
	CumulativeSavings    float64 `json:"cumulative_savings"`
	CumulativeInvestment float64 `json:"cumulative_investment"`
	NetSavings           float64 `json:"net_savings"`
}

// Projection is a simple undiscounted multi-year view of a run.
// BreakEvenYear is 0 when BeyondHorizon is true.
type Projection struct {
	HorizonYears  int              `json:"horizon_years"`
	Years         []ProjectionYear `json:"years"`
	BreakEvenYear int              `json:"break_even_year,omitempty"`
	BeyondHorizon bool             `json:"beyond_horizon"`
}

// Project assumes every evaluated measure is installed up front in year 0
// and saves Totals.CostSavings each year.
func Project(r *Results, horizonYears int) Projection {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}
	p := Projection{
		HorizonYears:  horizonYears,
		Years:         make([]ProjectionYear, 0, horizonYears),
		BeyondHorizon: true,
	}
	if r == nil {
		return p
	}
	investment := r.Totals.TotalInvestment
	for y := 1; y <= horizonYears; y++ {
		cum := r.Totals.CostSavings * float64(y)
		row := ProjectionYear{
			Year:                 y,
			CumulativeSavings:    cum,
			CumulativeInvestment: investment,
			NetSavings:           cum - investment,
		}
		p.Years = append(p.Years, row)
		if p.BeyondHorizon && row.NetSavings >= 0 {
			p.BreakEvenYear = y
			p.BeyondHorizon = false
		}
	}
	return p
}
