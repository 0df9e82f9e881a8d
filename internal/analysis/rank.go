package analysis

import (
	"fmt"
	"sort"

	"energy-retrofit/internal/model"
	"energy-retrofit/internal/simulation"
)

// HighPriorityPaybackYears is the payback at or below which a measure is High priority.
const HighPriorityPaybackYears = 2.0

// Ceilings are the maximum acceptable payback years per measure category.
type Ceilings struct {
	Motor    float64 `json:"motor_payback_ceiling"`
	VFD      float64 `json:"vfd_payback_ceiling"`
	Lighting float64 `json:"lighting_payback_ceiling"`
}

func DefaultCeilings() Ceilings {
	return Ceilings{Motor: 5, VFD: 4, Lighting: 5}
}

// WithDefaults replaces non-positive ceilings with the defaults.
func (c Ceilings) WithDefaults() Ceilings {
	d := DefaultCeilings()
	if c.Motor <= 0 {
		c.Motor = d.Motor
	}
	if c.VFD <= 0 {
		c.VFD = d.VFD
	}
	if c.Lighting <= 0 {
		c.Lighting = d.Lighting
	}
	return c
}

// Rank keeps the measures that pay back within their category ceiling and
// orders them by descending RankKey (shortest payback first). Ties keep
// candidate order: motor upgrades, then VFDs, then lighting, each by motor id.
// An empty result means nothing is economically attractive; it is not an error.
func Rank(r *simulation.Results, c Ceilings) []model.Recommendation {
	if r == nil {
		return nil
	}
	out := make([]model.Recommendation, 0, len(r.MotorUpgrades)+len(r.VFDs)+1)

	for _, m := range r.MotorUpgrades {
		if model.HasPayback(m.PaybackYears) && m.PaybackYears <= c.Motor {
			out = append(out, recommend(model.MeasureMotorUpgrade, m.MotorID,
				fmt.Sprintf("Motor %d: %s → %s (%gkW × %d)", m.MotorID, m.CurrentClass, model.UpgradeTarget, m.RatingKW, m.Quantity),
				m.UpgradeCost, m.CostSavings, m.PaybackYears))
		}
	}
	for _, v := range r.VFDs {
		if model.HasPayback(v.PaybackYears) && v.PaybackYears <= c.VFD {
			out = append(out, recommend(model.MeasureVFDInstallation, v.MotorID,
				fmt.Sprintf("Motor %d: %gkW VFD (%d units)", v.MotorID, v.RatingKW, v.Quantity),
				v.VFDCost, v.CostSavings, v.PaybackYears))
		}
	}
	if l := r.Lighting; model.HasPayback(l.PaybackYears) && l.PaybackYears <= c.Lighting {
		out = append(out, recommend(model.MeasureLightingRetrofit, 0,
			fmt.Sprintf("LED Retrofit: %d fixtures × %gW LED", l.NumFixtures, l.LEDWattage),
			l.RetrofitCost, l.CostSavings, l.PaybackYears))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RankKey > out[j].RankKey
	})
	return out
}

func recommend(kind model.MeasureType, id int, desc string, investment, savings, payback float64) model.Recommendation {
	rec := model.Recommendation{
		MeasureType:   kind,
		SourceID:      id,
		Description:   desc,
		Investment:    investment,
		AnnualSavings: savings,
		PaybackYears:  payback,
		Priority:      model.PriorityMedium,
	}
	if payback <= HighPriorityPaybackYears {
		rec.Priority = model.PriorityHigh
	}
	if payback > 0 {
		rec.RankKey = 1 / payback
	}
	return rec
}
