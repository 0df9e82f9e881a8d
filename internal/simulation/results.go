package simulation

import "energy-retrofit/internal/model"

// Results is the output of one engine run. It is built fresh on every run
// and shares no memory with the inputs.
type Results struct {
	Schedule    model.OperatingSchedule
	Tariff      model.Tariff
	AnnualHours float64

	// One entry per input motor group, in input order.
	MotorUpgrades []model.MotorUpgradeResult
	// Only VFD-applicable groups, in input order.
	VFDs     []model.VfdResult
	Lighting model.LightingResult

	Totals Totals
}

// Totals aggregates the per-measure records.
type Totals struct {
	EnergySavingsKWh float64 `json:"energy_savings_kwh"`
	CostSavings      float64 `json:"cost_savings"`
	CO2ReductionTons float64 `json:"co2_reduction_tons"`
	// CarsOffRoad assumes 5 t CO2 per passenger car per year.
	CarsOffRoad float64 `json:"cars_off_road"`

	MotorUpgradeInvestment float64 `json:"motor_upgrade_investment"`
	VFDInvestment          float64 `json:"vfd_investment"`
	LightingInvestment     float64 `json:"lighting_investment"`
	TotalInvestment        float64 `json:"total_investment"`

	// Informational only; not part of CostSavings.
	PeakDemandReductionKW float64 `json:"peak_demand_reduction_kw"`
	AnnualDemandSavings   float64 `json:"annual_demand_savings"`
}

const tonsCO2PerCarYear = 5.0

func computeTotals(r *Results) Totals {
	var t Totals
	for _, m := range r.MotorUpgrades {
		t.EnergySavingsKWh += m.EnergySavingsKWh
		t.CostSavings += m.CostSavings
		t.MotorUpgradeInvestment += m.UpgradeCost
		t.PeakDemandReductionKW += m.DemandReductionKW
	}
	for _, v := range r.VFDs {
		t.EnergySavingsKWh += v.EnergySavingsKWh
		t.CostSavings += v.CostSavings
		t.VFDInvestment += v.VFDCost
		t.PeakDemandReductionKW += v.DemandReductionKW
	}
	t.EnergySavingsKWh += r.Lighting.EnergySavingsKWh
	t.CostSavings += r.Lighting.CostSavings
	t.LightingInvestment = r.Lighting.RetrofitCost
	t.PeakDemandReductionKW += r.Lighting.DemandReductionKW

	t.TotalInvestment = t.MotorUpgradeInvestment + t.VFDInvestment + t.LightingInvestment
	t.CO2ReductionTons = t.EnergySavingsKWh * r.Tariff.CO2FactorKgPerKWh / 1000
	t.CarsOffRoad = t.CO2ReductionTons / tonsCO2PerCarYear
	t.AnnualDemandSavings = t.PeakDemandReductionKW * r.Tariff.DemandChargePerKWMonth * 12
	return t
}
