package models

import (
	"energy-retrofit/internal/analysis"
	"energy-retrofit/internal/model"
	"energy-retrofit/internal/simulation"
)

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID              string                     `json:"id"`
	Status          string                     `json:"status"`
	FactoryType     string                     `json:"factory_type"`
	AnnualHours     float64                    `json:"annual_hours"`
	MotorUpgrades   []model.MotorUpgradeResult `json:"motor_upgrades"`
	VFDs            []model.VfdResult          `json:"vfds"`
	Lighting        model.LightingResult       `json:"lighting"`
	Totals          TotalsSummary              `json:"totals"`
	Recommendations []RecommendationInfo       `json:"recommendations"`
	Projection      simulation.Projection      `json:"projection"`
	Roadmap         []analysis.RoadmapStep     `json:"roadmap"`
}

// TotalsSummary contains the aggregated results, money rounded to cents
type TotalsSummary struct {
	EnergySavingsKWh       float64 `json:"energy_savings_kwh"`
	CostSavings            float64 `json:"cost_savings"`
	CO2ReductionTons       float64 `json:"co2_reduction_tons"`
	CarsOffRoad            float64 `json:"cars_off_road"`
	MotorUpgradeInvestment float64 `json:"motor_upgrade_investment"`
	VFDInvestment          float64 `json:"vfd_investment"`
	LightingInvestment     float64 `json:"lighting_investment"`
	TotalInvestment        float64 `json:"total_investment"`
	PeakDemandReductionKW  float64 `json:"peak_demand_reduction_kw"`
	AnnualDemandSavings    float64 `json:"annual_demand_savings"`
}

// RecommendationInfo is one ranked measure
type RecommendationInfo struct {
	Rank          int     `json:"rank"`
	MeasureType   string  `json:"measure_type"`
	SourceID      int     `json:"source_id,omitempty"`
	Description   string  `json:"description"`
	Investment    float64 `json:"investment"`
	AnnualSavings float64 `json:"annual_savings"`
	PaybackYears  float64 `json:"payback_years"`
	Priority      string  `json:"priority"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	ID         string             `json:"id"`
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation. Failed variations
// carry Error instead of Totals.
type ComparisonResult struct {
	Name               string         `json:"name"`
	Status             string         `json:"status"`
	Totals             *TotalsSummary `json:"totals,omitempty"`
	NumRecommendations int            `json:"num_recommendations"`
	BreakEvenYear      int            `json:"break_even_year,omitempty"`
	Error              *ErrorDetail   `json:"error,omitempty"`
}

// FactoryInfo represents a selectable factory inventory (built-in preset or file)
type FactoryInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	FactoryType    string  `json:"factory_type"`
	Source         string  `json:"source"` // "preset" or "file"
	File           string  `json:"file,omitempty"`
	MotorGroups    int     `json:"motor_groups"`
	InstalledKW    float64 `json:"installed_kw"`
	NumFixtures    int     `json:"num_fixtures"`
	FixtureType    string  `json:"fixture_type,omitempty"`
	UsesPresetFrom string  `json:"uses_preset_from,omitempty"`
}

// EfficiencyClassInfo describes a motor efficiency class
type EfficiencyClassInfo struct {
	Class         string       `json:"class"`
	Description   string       `json:"description"`
	UnitCostPerKW float64      `json:"unit_cost_per_kw"`
	Curve         []CurvePoint `json:"curve"`
}

// CurvePoint is one anchor of a load-factor curve
type CurvePoint struct {
	LoadFactor float64 `json:"load_factor"`
	Value      float64 `json:"value"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
