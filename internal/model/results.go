package model

// MotorUpgradeResult is the economics of replacing one motor group with IE4 motors.
type MotorUpgradeResult struct {
	MotorID            int             `json:"motor_id"`
	RatingKW           float64         `json:"rating_kw"`
	Quantity           int             `json:"quantity"`
	LoadFactor         float64         `json:"load_factor"`
	CurrentClass       EfficiencyClass `json:"current_class"`
	CurrentEfficiency  float64         `json:"current_efficiency"`
	UpgradedEfficiency float64         `json:"upgraded_efficiency"`
	EnergySavingsKWh   float64         `json:"energy_savings_kwh"`
	DemandReductionKW  float64         `json:"demand_reduction_kw"`
	CostSavings        float64         `json:"cost_savings"`
	UpgradeCost        float64         `json:"upgrade_cost"`
	PaybackYears       float64         `json:"payback_years"`
}

// VfdResult is the economics of fitting variable-frequency drives to one motor group.
type VfdResult struct {
	MotorID           int     `json:"motor_id"`
	RatingKW          float64 `json:"rating_kw"`
	Quantity          int     `json:"quantity"`
	LoadFactor        float64 `json:"load_factor"`
	SavingsPercent    float64 `json:"savings_pct"`
	EnergySavingsKWh  float64 `json:"energy_savings_kwh"`
	DemandReductionKW float64 `json:"demand_reduction_kw"`
	CostSavings       float64 `json:"cost_savings"`
	VFDCost           float64 `json:"vfd_cost"`
	PaybackYears      float64 `json:"payback_years"`
}

// LightingResult is the economics of an LED retrofit.
type LightingResult struct {
	FixtureType       string  `json:"fixture_type"`
	NumFixtures       int     `json:"num_fixtures"`
	LEDWattage        float64 `json:"led_wattage"`
	AnnualHours       float64 `json:"annual_hours"`
	CurrentEnergyKWh  float64 `json:"current_energy_kwh"`
	LEDEnergyKWh      float64 `json:"led_energy_kwh"`
	EnergySavingsKWh  float64 `json:"energy_savings_kwh"`
	SavingsPercent    float64 `json:"savings_pct"`
	DemandReductionKW float64 `json:"demand_reduction_kw"`
	CostSavings       float64 `json:"cost_savings"`
	RetrofitCost      float64 `json:"retrofit_cost"`
	PaybackYears      float64 `json:"payback_years"`
}

// MeasureType names a kind of retrofit measure.
// Keep these values stable; they are intended for CSV output.
type MeasureType string

const (
	MeasureMotorUpgrade     MeasureType = "Motor Upgrade"
	MeasureVFDInstallation  MeasureType = "VFD Installation"
	MeasureLightingRetrofit MeasureType = "Lighting Retrofit"
)

// Priority is the urgency tier of a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// Recommendation is one ranked, economically attractive measure.
// SourceID is the MotorID for motor and VFD measures and 0 for lighting.
type Recommendation struct {
	MeasureType   MeasureType `json:"measure_type"`
	SourceID      int         `json:"source_id"`
	Description   string      `json:"description"`
	Investment    float64     `json:"investment"`
	AnnualSavings float64     `json:"annual_savings"`
	PaybackYears  float64     `json:"payback_years"`
	Priority      Priority    `json:"priority"`
	RankKey       float64     `json:"rank_key"`
}
