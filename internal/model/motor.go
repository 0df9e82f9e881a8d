package model

import (
	"math"

	"energy-retrofit/internal/curve"

	"github.com/pkg/errors"
)

const (
	// MotorUpgradeCostFloor is the minimum engineering and labour cost ($) of
	// any motor replacement, however small the group.
	MotorUpgradeCostFloor = 100.0

	// VFDCostPerKW is the installed drive cost in $/kW of rated motor power.
	VFDCostPerKW = 100.0

	// UpgradeTarget is the class every motor group is evaluated against.
	UpgradeTarget = IE4
)

// Part-load efficiency curves, load factor -> efficiency.
var (
	ie1Curve = curve.MustNew(
		curve.Point{X: 0.25, Y: 0.78},
		curve.Point{X: 0.50, Y: 0.85},
		curve.Point{X: 0.75, Y: 0.88},
		curve.Point{X: 1.00, Y: 0.89},
	)
	ie2Curve = curve.MustNew(
		curve.Point{X: 0.25, Y: 0.82},
		curve.Point{X: 0.50, Y: 0.88},
		curve.Point{X: 0.75, Y: 0.90},
		curve.Point{X: 1.00, Y: 0.91},
	)
	ie3Curve = curve.MustNew(
		curve.Point{X: 0.25, Y: 0.85},
		curve.Point{X: 0.50, Y: 0.90},
		curve.Point{X: 0.75, Y: 0.92},
		curve.Point{X: 1.00, Y: 0.93},
	)
	ie4Curve = curve.MustNew(
		curve.Point{X: 0.25, Y: 0.88},
		curve.Point{X: 0.50, Y: 0.93},
		curve.Point{X: 0.75, Y: 0.95},
		curve.Point{X: 1.00, Y: 0.96},
	)

	// Fraction of input energy a VFD saves at a given load factor.
	vfdSavingsCurve = curve.MustNew(
		curve.Point{X: 0.25, Y: 0.40},
		curve.Point{X: 0.50, Y: 0.25},
		curve.Point{X: 0.75, Y: 0.10},
		curve.Point{X: 1.00, Y: 0.00},
	)
)

// EfficiencyCurve returns the class's part-load curve.
// Unrecognised classes use the IE2 curve.
func EfficiencyCurve(c EfficiencyClass) curve.Table {
	switch c {
	case IE1:
		return ie1Curve
	case IE3:
		return ie3Curve
	case IE4:
		return ie4Curve
	default:
		return ie2Curve
	}
}

// VFDSavingsCurve returns the shared load factor -> savings fraction curve.
func VFDSavingsCurve() curve.Table { return vfdSavingsCurve }

// MotorUnitCostPerKW is the purchase price of a motor in $/kW.
// IE1 motors are no longer sold, so IE1 and unrecognised classes are priced as IE2.
func MotorUnitCostPerKW(c EfficiencyClass) float64 {
	switch c {
	case IE3:
		return 65
	case IE4:
		return 85
	default:
		return 50
	}
}

// EfficiencyOf interpolates the class's efficiency at loadFactor.
func EfficiencyOf(c EfficiencyClass, loadFactor float64) float64 {
	return EfficiencyCurve(c).Lookup(loadFactor)
}

// VFDSavingsFraction interpolates the VFD savings fraction at loadFactor.
func VFDSavingsFraction(loadFactor float64) float64 {
	return vfdSavingsCurve.Lookup(loadFactor)
}

// EvaluateUpgrade values replacing group g with IE4 motors.
// annualHours is the per-motor running time; quantity is applied here.
func EvaluateUpgrade(motorID int, g MotorGroup, annualHours float64, t Tariff) (MotorUpgradeResult, error) {
	if err := g.Validate(); err != nil {
		return MotorUpgradeResult{}, errors.WithMessagef(err, "motor group %d", motorID)
	}

	currentEff := EfficiencyOf(g.CurrentClass, g.LoadFactor)
	targetEff := EfficiencyOf(UpgradeTarget, g.LoadFactor)

	// Shaft (useful) energy does not depend on the motor class.
	shaftKW := g.RatingKW * g.LoadFactor * float64(g.Quantity)
	shaftEnergy := g.RatingKW * g.LoadFactor * annualHours * float64(g.Quantity)
	currentInput := shaftEnergy / currentEff
	targetInput := shaftEnergy / targetEff

	energySavings := math.Max(0, currentInput-targetInput)
	costSavings := energySavings * t.ElectricityCostPerKWh

	upgradeCost := g.RatingKW * float64(g.Quantity) *
		(MotorUnitCostPerKW(UpgradeTarget) - MotorUnitCostPerKW(g.CurrentClass))
	upgradeCost = math.Max(upgradeCost, MotorUpgradeCostFloor)

	return MotorUpgradeResult{
		MotorID:            motorID,
		RatingKW:           g.RatingKW,
		Quantity:           g.Quantity,
		LoadFactor:         g.LoadFactor,
		CurrentClass:       g.CurrentClass,
		CurrentEfficiency:  currentEff,
		UpgradedEfficiency: targetEff,
		EnergySavingsKWh:   energySavings,
		DemandReductionKW:  math.Max(0, shaftKW/currentEff-shaftKW/targetEff),
		CostSavings:        costSavings,
		UpgradeCost:        upgradeCost,
		PaybackYears:       Payback(upgradeCost, costSavings),
	}, nil
}

// EvaluateVFD values fitting drives to group g. ok is false when the group is
// not flagged VFD-applicable; no result is produced for it.
// annualHours is the per-motor running time; quantity is applied here.
func EvaluateVFD(motorID int, g MotorGroup, annualHours float64, t Tariff) (res VfdResult, ok bool, err error) {
	if err := g.Validate(); err != nil {
		return VfdResult{}, false, errors.WithMessagef(err, "motor group %d", motorID)
	}
	if !g.VFDApplicable {
		return VfdResult{}, false, nil
	}

	frac := VFDSavingsFraction(g.LoadFactor)
	basePower := g.RatingKW * g.LoadFactor
	baseEnergy := basePower * annualHours * float64(g.Quantity)
	savedEnergy := baseEnergy * frac
	costSavings := savedEnergy * t.ElectricityCostPerKWh
	vfdCost := g.RatingKW * float64(g.Quantity) * VFDCostPerKW

	return VfdResult{
		MotorID:           motorID,
		RatingKW:          g.RatingKW,
		Quantity:          g.Quantity,
		LoadFactor:        g.LoadFactor,
		SavingsPercent:    frac * 100,
		EnergySavingsKWh:  savedEnergy,
		DemandReductionKW: basePower * float64(g.Quantity) * frac,
		CostSavings:       costSavings,
		VFDCost:           vfdCost,
		PaybackYears:      Payback(vfdCost, costSavings),
	}, true, nil
}
