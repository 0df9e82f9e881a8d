package models

// SimulateRequest represents the request body for running an audit simulation.
// Every field is optional; missing equipment comes from the factory preset
// or the named inventory file, missing schedule and tariff values get defaults.
type SimulateRequest struct {
	FactoryType   string         `json:"factory_type,omitempty"`
	InventoryFile string         `json:"inventory_file,omitempty"` // file name in INVENTORY_DIR, e.g. "north_mill"
	Schedule      ScheduleConfig `json:"schedule,omitempty"`
	Tariff        TariffConfig   `json:"tariff,omitempty"`
	Motors        []MotorConfig  `json:"motors,omitempty"`
	Lighting      LightingConfig `json:"lighting,omitempty"`
	Ranking       RankingConfig  `json:"ranking,omitempty"`
	AnalysisYears int            `json:"analysis_years,omitempty"`
	StartYear     int            `json:"start_year,omitempty"` // roadmap start; default: current year
}

// ScheduleConfig defines the production calendar
type ScheduleConfig struct {
	OperatingDaysPerYear int `json:"operating_days_per_year,omitempty"`
	ShiftsPerDay         int `json:"shifts_per_day,omitempty"`
	HoursPerShift        int `json:"hours_per_shift,omitempty"`
}

// TariffConfig defines energy prices. Demand charge and CO2 factor may be 0.
type TariffConfig struct {
	ElectricityCostPerKWh  float64  `json:"electricity_cost_per_kwh,omitempty"`
	DemandChargePerKWMonth *float64 `json:"demand_charge_per_kw_month,omitempty"`
	CO2FactorKgPerKWh      *float64 `json:"co2_factor_kg_per_kwh,omitempty"`
}

// MotorConfig defines one motor group
type MotorConfig struct {
	RatingKW      float64 `json:"rating_kw"`
	Quantity      int     `json:"quantity"`
	LoadFactor    float64 `json:"load_factor"`
	Class         string  `json:"class,omitempty"`          // IE1..IE4, default IE2
	VFDApplicable *bool   `json:"vfd_applicable,omitempty"` // default: load_factor < 0.8
}

// LightingConfig defines the existing fixtures
type LightingConfig struct {
	FixtureType        string  `json:"fixture_type,omitempty"`
	NumFixtures        int     `json:"num_fixtures,omitempty"`
	WattagePerFixture  float64 `json:"wattage_per_fixture,omitempty"`
	DailyHours         float64 `json:"daily_hours,omitempty"`
	ProposedLEDWattage float64 `json:"proposed_led_wattage,omitempty"`
}

// RankingConfig overrides the payback ceilings
type RankingConfig struct {
	MotorMaxPaybackYears    float64 `json:"motor_max_payback_years,omitempty"`
	VFDMaxPaybackYears      float64 `json:"vfd_max_payback_years,omitempty"`
	LightingMaxPaybackYears float64 `json:"lighting_max_payback_years,omitempty"`
}

// CompareRequest represents a request to compare what-if variations of one audit
type CompareRequest struct {
	Base       SimulateRequest `json:"base"`
	Variations []Variation     `json:"variations" binding:"required,min=1,dive"`
}

// Variation overrides fields of the base audit
type Variation struct {
	Name      string          `json:"name" binding:"required"`
	Overrides SimulateRequest `json:"overrides"`
}
