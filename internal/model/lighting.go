package model

import (
	"github.com/pkg/errors"
)

const (
	// LEDInstallMultiplier scales the LED unit price to an installed cost
	// (fixture, wiring, labour).
	LEDInstallMultiplier = 10.0

	// DefaultLEDWattageRatio is the typical LED draw relative to the fixture it replaces.
	DefaultLEDWattageRatio = 0.4
)

// AnnualLightingEnergy returns the kWh drawn by numFixtures fixtures of
// wattage W each over annualHours.
func AnnualLightingEnergy(numFixtures int, wattage, annualHours float64) (float64, error) {
	if numFixtures < 1 {
		return 0, errors.Wrapf(ErrInvalidLightingConfig, "fixtures %d must be >= 1", numFixtures)
	}
	if !(wattage > 0) {
		return 0, errors.Wrapf(ErrInvalidLightingConfig, "wattage %g must be > 0", wattage)
	}
	if !(annualHours > 0) {
		return 0, errors.Wrapf(ErrInvalidLightingConfig, "annual hours %g must be > 0", annualHours)
	}
	return float64(numFixtures) * wattage * annualHours / 1000, nil
}

// DefaultLEDWattage proposes an LED wattage for a fixture of the given wattage,
// truncated to whole watts and never below 1 W.
func DefaultLEDWattage(wattage float64) float64 {
	w := float64(int(wattage * DefaultLEDWattageRatio))
	if w < 1 {
		return 1
	}
	return w
}

// EvaluateRetrofit values replacing the configured fixtures with LEDs.
// Lighting runs dailyHours on every operating day, independent of shifts.
func EvaluateRetrofit(c LightingConfig, s OperatingSchedule, t Tariff) (LightingResult, error) {
	if err := c.Validate(); err != nil {
		return LightingResult{}, err
	}
	if err := s.Validate(); err != nil {
		return LightingResult{}, err
	}
	annualHours := c.DailyHours * float64(s.OperatingDaysPerYear)

	current, err := AnnualLightingEnergy(c.NumFixtures, c.WattagePerFixture, annualHours)
	if err != nil {
		return LightingResult{}, err
	}
	led, err := AnnualLightingEnergy(c.NumFixtures, c.ProposedLEDWattage, annualHours)
	if err != nil {
		return LightingResult{}, err
	}

	savings := current - led
	costSavings := savings * t.ElectricityCostPerKWh
	retrofitCost := float64(c.NumFixtures) * LEDTechnology().CostPerUnit * LEDInstallMultiplier

	return LightingResult{
		FixtureType:       c.FixtureType,
		NumFixtures:       c.NumFixtures,
		LEDWattage:        c.ProposedLEDWattage,
		AnnualHours:       annualHours,
		CurrentEnergyKWh:  current,
		LEDEnergyKWh:      led,
		EnergySavingsKWh:  savings,
		SavingsPercent:    savings / current * 100,
		DemandReductionKW: float64(c.NumFixtures) * (c.WattagePerFixture - c.ProposedLEDWattage) / 1000,
		CostSavings:       costSavings,
		RetrofitCost:      retrofitCost,
		PaybackYears:      Payback(retrofitCost, costSavings),
	}, nil
}
