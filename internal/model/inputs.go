package model

import (
	"math"

	"github.com/pkg/errors"
)

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// MotorGroup is a homogeneous batch of identical motors.
// Units:
// - RatingKW: kW shaft rating per motor
// - LoadFactor: fraction of rating actually delivered, (0,1]
type MotorGroup struct {
	RatingKW      float64
	Quantity      int
	LoadFactor    float64
	CurrentClass  EfficiencyClass
	VFDApplicable bool
}

func (g MotorGroup) Validate() error {
	if !(g.RatingKW > 0) || !finite(g.RatingKW) {
		return errors.Wrapf(ErrInvalidMotorGroup, "rating %g kW must be finite and > 0", g.RatingKW)
	}
	if g.Quantity < 1 {
		return errors.Wrapf(ErrInvalidMotorGroup, "quantity %d must be >= 1", g.Quantity)
	}
	if !(g.LoadFactor > 0 && g.LoadFactor <= 1) {
		return errors.Wrapf(ErrInvalidMotorGroup, "load factor %g outside (0,1]", g.LoadFactor)
	}
	return nil
}

// LightingConfig describes the existing fixtures and the proposed LED replacement.
// Wattages are per fixture in W.
type LightingConfig struct {
	FixtureType        string
	NumFixtures        int
	WattagePerFixture  float64
	DailyHours         float64
	ProposedLEDWattage float64
}

func (c LightingConfig) Validate() error {
	if c.NumFixtures < 1 {
		return errors.Wrapf(ErrInvalidLightingConfig, "fixtures %d must be >= 1", c.NumFixtures)
	}
	if !(c.WattagePerFixture > 0) || !finite(c.WattagePerFixture) {
		return errors.Wrapf(ErrInvalidLightingConfig, "fixture wattage %g must be finite and > 0", c.WattagePerFixture)
	}
	if !(c.DailyHours > 0 && c.DailyHours <= 24) {
		return errors.Wrapf(ErrInvalidLightingConfig, "daily hours %g outside (0,24]", c.DailyHours)
	}
	if !(c.ProposedLEDWattage > 0) || !finite(c.ProposedLEDWattage) {
		return errors.Wrapf(ErrInvalidLightingConfig, "LED wattage %g must be finite and > 0", c.ProposedLEDWattage)
	}
	return nil
}

// OperatingSchedule is the plant's production calendar.
type OperatingSchedule struct {
	OperatingDaysPerYear int
	ShiftsPerDay         int
	HoursPerShift        int
}

// TotalAnnualHours is days x shifts x hours.
func (s OperatingSchedule) TotalAnnualHours() float64 {
	return float64(s.OperatingDaysPerYear) * float64(s.ShiftsPerDay) * float64(s.HoursPerShift)
}

// Validate only requires a positive calendar. Overlapping shifts may exceed
// 24 h per day.
func (s OperatingSchedule) Validate() error {
	if s.OperatingDaysPerYear < 1 {
		return errors.Wrapf(ErrInvalidSchedule, "operating days %d must be >= 1", s.OperatingDaysPerYear)
	}
	if s.ShiftsPerDay < 1 {
		return errors.Wrapf(ErrInvalidSchedule, "shifts per day %d must be >= 1", s.ShiftsPerDay)
	}
	if s.HoursPerShift < 1 {
		return errors.Wrapf(ErrInvalidSchedule, "hours per shift %d must be >= 1", s.HoursPerShift)
	}
	return nil
}

// Tariff holds the energy prices used to value savings.
// Units:
// - ElectricityCostPerKWh: $/kWh
// - DemandChargePerKWMonth: $/kW-month
// - CO2FactorKgPerKWh: kg CO2 per kWh
type Tariff struct {
	ElectricityCostPerKWh  float64
	DemandChargePerKWMonth float64
	CO2FactorKgPerKWh      float64
}

func (t Tariff) Validate() error {
	if !(t.ElectricityCostPerKWh > 0) || !finite(t.ElectricityCostPerKWh) {
		return errors.Wrapf(ErrInvalidTariff, "electricity cost %g must be > 0", t.ElectricityCostPerKWh)
	}
	if !(t.DemandChargePerKWMonth >= 0) || !finite(t.DemandChargePerKWMonth) {
		return errors.Wrapf(ErrInvalidTariff, "demand charge %g must be >= 0", t.DemandChargePerKWMonth)
	}
	if !(t.CO2FactorKgPerKWh >= 0) || !finite(t.CO2FactorKgPerKWh) {
		return errors.Wrapf(ErrInvalidTariff, "CO2 factor %g must be >= 0", t.CO2FactorKgPerKWh)
	}
	return nil
}
