package config

import (
	"os"
	"path/filepath"

	"energy-retrofit/internal/analysis"
	"energy-retrofit/internal/data"
	"energy-retrofit/internal/model"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied to fields left empty in a config.
const (
	DefaultOperatingDays          = 300
	DefaultShiftsPerDay           = 2
	DefaultHoursPerShift          = 8
	DefaultElectricityCostPerKWh  = 0.12
	DefaultDemandChargePerKWMonth = 15.0
	DefaultCO2FactorKgPerKWh      = 0.5
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	FactoryType string `yaml:"factory_type"`
	// Optional: load motors and lighting from a separate YAML (e.g. examples/factories/*.yaml).
	// Explicit motors replace the file's list; explicit lighting fields override the file's.
	InventoryFile string         `yaml:"inventory_file"`
	Schedule      ScheduleConfig `yaml:"schedule"`
	Tariff        TariffConfig   `yaml:"tariff"`
	Motors        []MotorConfig  `yaml:"motors"`
	Lighting      LightingConfig `yaml:"lighting"`
	Ranking       RankingConfig  `yaml:"ranking"`
	AnalysisYears int            `yaml:"analysis_years"`
}

type ScheduleConfig struct {
	OperatingDaysPerYear int `yaml:"operating_days_per_year"`
	ShiftsPerDay         int `yaml:"shifts_per_day"`
	HoursPerShift        int `yaml:"hours_per_shift"`
}

// TariffConfig uses pointers where zero is a legitimate value.
type TariffConfig struct {
	ElectricityCostPerKWh  float64  `yaml:"electricity_cost_per_kwh"`
	DemandChargePerKWMonth *float64 `yaml:"demand_charge_per_kw_month"`
	CO2FactorKgPerKWh      *float64 `yaml:"co2_factor_kg_per_kwh"`
}

type MotorConfig struct {
	RatingKW   float64 `yaml:"rating_kw"`
	Quantity   int     `yaml:"quantity"`
	LoadFactor float64 `yaml:"load_factor"`
	Class      string  `yaml:"class"`
	// Unset means "VFD candidate if load factor < 0.8".
	VFDApplicable *bool `yaml:"vfd_applicable"`
}

type LightingConfig struct {
	FixtureType        string  `yaml:"fixture_type"`
	NumFixtures        int     `yaml:"num_fixtures"`
	WattagePerFixture  float64 `yaml:"wattage_per_fixture"`
	DailyHours         float64 `yaml:"daily_hours"`
	ProposedLEDWattage float64 `yaml:"proposed_led_wattage"`
}

type RankingConfig struct {
	MotorMaxPaybackYears    float64 `yaml:"motor_max_payback_years"`
	VFDMaxPaybackYears      float64 `yaml:"vfd_max_payback_years"`
	LightingMaxPaybackYears float64 `yaml:"lighting_max_payback_years"`
}

// Inventory is the shape of an inventory file: one factory's equipment list.
type Inventory struct {
	Name        string         `yaml:"name"`
	FactoryType string         `yaml:"factory_type"`
	Motors      []MotorConfig  `yaml:"motors"`
	Lighting    LightingConfig `yaml:"lighting"`
}

// Audit is a fully resolved configuration in engine terms.
type Audit struct {
	FactoryType   string
	Motors        []model.MotorGroup
	Lighting      model.LightingConfig
	Schedule      model.OperatingSchedule
	Tariff        model.Tariff
	Ceilings      analysis.Ceilings
	AnalysisYears int
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not apply defaults or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if c.InventoryFile != "" {
		inv, err := LoadInventoryFile(ResolvePath(filepath.Dir(path), c.InventoryFile))
		if err != nil {
			return nil, err
		}
		c.ApplyInventory(inv)
	}
	return &c, nil
}

// ResolvePath interprets a relative path against baseDir first, falling back
// to the path as given (relative to cwd) if that doesn't exist.
func ResolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(baseDir, p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

func LoadInventoryFile(path string) (Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Inventory{}, errors.Wrap(err, "read inventory")
	}
	var inv Inventory
	if err := yaml.Unmarshal(raw, &inv); err != nil {
		return Inventory{}, errors.Wrapf(err, "parse inventory %s", path)
	}
	return inv, nil
}

// ApplyInventory uses inv as the base for anything the config does not set itself.
func (c *Config) ApplyInventory(inv Inventory) {
	if c.FactoryType == "" {
		c.FactoryType = inv.FactoryType
	}
	if len(c.Motors) == 0 {
		c.Motors = append([]MotorConfig(nil), inv.Motors...)
	}
	c.Lighting = MergeLighting(inv.Lighting, c.Lighting)
}

// ApplyDefaults fills empty fields. Missing motors come from the preset for
// FactoryType; lighting fields that are set override the preset's lighting.
func (c *Config) ApplyDefaults() {
	if c.FactoryType == "" {
		c.FactoryType = data.DefaultFactoryType
	}
	p := data.Preset(c.FactoryType)
	if len(c.Motors) == 0 {
		c.Motors = motorConfigsFrom(p.Motors)
	}
	c.Lighting = MergeLighting(lightingConfigFrom(p.Lighting), c.Lighting)
	if c.Lighting.ProposedLEDWattage == 0 && c.Lighting.WattagePerFixture > 0 {
		c.Lighting.ProposedLEDWattage = model.DefaultLEDWattage(c.Lighting.WattagePerFixture)
	}

	if c.Schedule.OperatingDaysPerYear == 0 {
		c.Schedule.OperatingDaysPerYear = DefaultOperatingDays
	}
	if c.Schedule.ShiftsPerDay == 0 {
		c.Schedule.ShiftsPerDay = DefaultShiftsPerDay
	}
	if c.Schedule.HoursPerShift == 0 {
		c.Schedule.HoursPerShift = DefaultHoursPerShift
	}

	if c.Tariff.ElectricityCostPerKWh == 0 {
		c.Tariff.ElectricityCostPerKWh = DefaultElectricityCostPerKWh
	}
	if c.Tariff.DemandChargePerKWMonth == nil {
		v := DefaultDemandChargePerKWMonth
		c.Tariff.DemandChargePerKWMonth = &v
	}
	if c.Tariff.CO2FactorKgPerKWh == nil {
		v := DefaultCO2FactorKgPerKWh
		c.Tariff.CO2FactorKgPerKWh = &v
	}

	if c.AnalysisYears == 0 {
		c.AnalysisYears = 10
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	a := c.Audit()
	for i, m := range a.Motors {
		if err := m.Validate(); err != nil {
			return errors.WithMessagef(err, "motors[%d]", i)
		}
	}
	if err := a.Lighting.Validate(); err != nil {
		return errors.WithMessage(err, "lighting")
	}
	if err := a.Schedule.Validate(); err != nil {
		return errors.WithMessage(err, "schedule")
	}
	if err := a.Tariff.Validate(); err != nil {
		return errors.WithMessage(err, "tariff")
	}
	if c.AnalysisYears < 1 {
		return errors.Errorf("analysis_years %d must be >= 1", c.AnalysisYears)
	}
	return nil
}

// Audit converts the config to engine inputs. Unknown motor classes are
// passed through and valued as IE2 by the model.
func (c *Config) Audit() Audit {
	a := Audit{
		FactoryType: c.FactoryType,
		Motors:      make([]model.MotorGroup, 0, len(c.Motors)),
		Lighting: model.LightingConfig{
			FixtureType:        c.Lighting.FixtureType,
			NumFixtures:        c.Lighting.NumFixtures,
			WattagePerFixture:  c.Lighting.WattagePerFixture,
			DailyHours:         c.Lighting.DailyHours,
			ProposedLEDWattage: c.Lighting.ProposedLEDWattage,
		},
		Schedule: model.OperatingSchedule{
			OperatingDaysPerYear: c.Schedule.OperatingDaysPerYear,
			ShiftsPerDay:         c.Schedule.ShiftsPerDay,
			HoursPerShift:        c.Schedule.HoursPerShift,
		},
		Tariff: model.Tariff{
			ElectricityCostPerKWh: c.Tariff.ElectricityCostPerKWh,
		},
		Ceilings: analysis.Ceilings{
			Motor:    c.Ranking.MotorMaxPaybackYears,
			VFD:      c.Ranking.VFDMaxPaybackYears,
			Lighting: c.Ranking.LightingMaxPaybackYears,
		}.WithDefaults(),
		AnalysisYears: c.AnalysisYears,
	}
	if c.Tariff.DemandChargePerKWMonth != nil {
		a.Tariff.DemandChargePerKWMonth = *c.Tariff.DemandChargePerKWMonth
	}
	if c.Tariff.CO2FactorKgPerKWh != nil {
		a.Tariff.CO2FactorKgPerKWh = *c.Tariff.CO2FactorKgPerKWh
	}
	for _, m := range c.Motors {
		a.Motors = append(a.Motors, m.ToModel())
	}
	return a
}

func (m MotorConfig) ToModel() model.MotorGroup {
	class := model.FallbackClass
	if m.Class != "" {
		class, _ = model.ParseEfficiencyClass(m.Class)
	}
	vfd := data.DefaultVFDApplicable(m.LoadFactor)
	if m.VFDApplicable != nil {
		vfd = *m.VFDApplicable
	}
	return model.MotorGroup{
		RatingKW:      m.RatingKW,
		Quantity:      m.Quantity,
		LoadFactor:    m.LoadFactor,
		CurrentClass:  class,
		VFDApplicable: vfd,
	}
}

// MergeLighting overlays non-zero fields from override onto base.
func MergeLighting(base, override LightingConfig) LightingConfig {
	out := base
	if override.FixtureType != "" {
		out.FixtureType = override.FixtureType
	}
	if override.NumFixtures != 0 {
		out.NumFixtures = override.NumFixtures
	}
	if override.WattagePerFixture != 0 {
		out.WattagePerFixture = override.WattagePerFixture
		// A new fixture wattage invalidates the base's derived LED proposal.
		if override.ProposedLEDWattage == 0 && base.WattagePerFixture != override.WattagePerFixture {
			out.ProposedLEDWattage = 0
		}
	}
	if override.DailyHours != 0 {
		out.DailyHours = override.DailyHours
	}
	if override.ProposedLEDWattage != 0 {
		out.ProposedLEDWattage = override.ProposedLEDWattage
	}
	return out
}

func motorConfigsFrom(groups []model.MotorGroup) []MotorConfig {
	out := make([]MotorConfig, 0, len(groups))
	for _, g := range groups {
		vfd := g.VFDApplicable
		out = append(out, MotorConfig{
			RatingKW:      g.RatingKW,
			Quantity:      g.Quantity,
			LoadFactor:    g.LoadFactor,
			Class:         string(g.CurrentClass),
			VFDApplicable: &vfd,
		})
	}
	return out
}

func lightingConfigFrom(l model.LightingConfig) LightingConfig {
	return LightingConfig{
		FixtureType:        l.FixtureType,
		NumFixtures:        l.NumFixtures,
		WattagePerFixture:  l.WattagePerFixture,
		DailyHours:         l.DailyHours,
		ProposedLEDWattage: l.ProposedLEDWattage,
	}
}

// Merge overlays the fields set in override onto base. A non-empty motor
// list replaces base's list; lighting is merged field by field.
func Merge(base, override Config) Config {
	out := base
	if override.FactoryType != "" {
		out.FactoryType = override.FactoryType
	}
	if override.InventoryFile != "" {
		out.InventoryFile = override.InventoryFile
	}
	if override.Schedule.OperatingDaysPerYear != 0 {
		out.Schedule.OperatingDaysPerYear = override.Schedule.OperatingDaysPerYear
	}
	if override.Schedule.ShiftsPerDay != 0 {
		out.Schedule.ShiftsPerDay = override.Schedule.ShiftsPerDay
	}
	if override.Schedule.HoursPerShift != 0 {
		out.Schedule.HoursPerShift = override.Schedule.HoursPerShift
	}
	if override.Tariff.ElectricityCostPerKWh != 0 {
		out.Tariff.ElectricityCostPerKWh = override.Tariff.ElectricityCostPerKWh
	}
	if override.Tariff.DemandChargePerKWMonth != nil {
		out.Tariff.DemandChargePerKWMonth = override.Tariff.DemandChargePerKWMonth
	}
	if override.Tariff.CO2FactorKgPerKWh != nil {
		out.Tariff.CO2FactorKgPerKWh = override.Tariff.CO2FactorKgPerKWh
	}
	if len(override.Motors) > 0 {
		out.Motors = append([]MotorConfig(nil), override.Motors...)
	} else {
		out.Motors = append([]MotorConfig(nil), base.Motors...)
	}
	out.Lighting = MergeLighting(base.Lighting, override.Lighting)
	if override.Ranking.MotorMaxPaybackYears != 0 {
		out.Ranking.MotorMaxPaybackYears = override.Ranking.MotorMaxPaybackYears
	}
	if override.Ranking.VFDMaxPaybackYears != 0 {
		out.Ranking.VFDMaxPaybackYears = override.Ranking.VFDMaxPaybackYears
	}
	if override.Ranking.LightingMaxPaybackYears != 0 {
		out.Ranking.LightingMaxPaybackYears = override.Ranking.LightingMaxPaybackYears
	}
	if override.AnalysisYears != 0 {
		out.AnalysisYears = override.AnalysisYears
	}
	return out
}
