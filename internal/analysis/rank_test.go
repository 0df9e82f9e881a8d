package analysis

import (
	"testing"

	"energy-retrofit/internal/model"
	"energy-retrofit/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	schedule = model.OperatingSchedule{OperatingDaysPerYear: 300, ShiftsPerDay: 2, HoursPerShift: 8}
	tariff   = model.Tariff{ElectricityCostPerKWh: 0.12, DemandChargePerKWMonth: 15, CO2FactorKgPerKWh: 0.5}
	lighting = model.LightingConfig{
		FixtureType:        "Fluorescent",
		NumFixtures:        200,
		WattagePerFixture:  40,
		DailyHours:         16,
		ProposedLEDWattage: 16,
	}
)

func run(t *testing.T, motors []model.MotorGroup, l model.LightingConfig) *simulation.Results {
	t.Helper()
	res, err := simulation.New().Run(motors, l, schedule, tariff)
	require.NoError(t, err)
	return res
}

func TestRankSingleMotorExample(t *testing.T) {
	res := run(t, []model.MotorGroup{
		{RatingKW: 15, Quantity: 8, LoadFactor: 0.75, CurrentClass: model.IE2, VFDApplicable: true},
	}, lighting)

	recs := Rank(res, DefaultCeilings())
	// Lighting pays back in ~10.9 years and is excluded.
	require.Len(t, recs, 2)

	assert.Equal(t, model.MeasureMotorUpgrade, recs[0].MeasureType)
	assert.Equal(t, model.PriorityHigh, recs[0].Priority)
	assert.Equal(t, "Motor 1: IE2 → IE4 (15kW × 8)", recs[0].Description)
	assert.InDelta(t, 4200, recs[0].Investment, 1e-9)
	assert.InDelta(t, 1/recs[0].PaybackYears, recs[0].RankKey, 1e-12)

	assert.Equal(t, model.MeasureVFDInstallation, recs[1].MeasureType)
	assert.Equal(t, model.PriorityMedium, recs[1].Priority)
	assert.Equal(t, "Motor 1: 15kW VFD (8 units)", recs[1].Description)
}

func TestRankRespectsCeilingsAndOrder(t *testing.T) {
	res := run(t, []model.MotorGroup{
		{RatingKW: 15, Quantity: 8, LoadFactor: 0.75, CurrentClass: model.IE2, VFDApplicable: true},
		{RatingKW: 22, Quantity: 6, LoadFactor: 0.80, CurrentClass: model.IE2},
		{RatingKW: 37, Quantity: 4, LoadFactor: 0.70, CurrentClass: model.IE2, VFDApplicable: true},
		{RatingKW: 55, Quantity: 2, LoadFactor: 0.85, CurrentClass: model.IE1},
		{RatingKW: 11, Quantity: 3, LoadFactor: 0.95, CurrentClass: model.IE4, VFDApplicable: true},
	}, lighting)

	c := DefaultCeilings()
	recs := Rank(res, c)
	require.NotEmpty(t, recs)

	for i, r := range recs {
		switch r.MeasureType {
		case model.MeasureMotorUpgrade:
			assert.LessOrEqual(t, r.PaybackYears, c.Motor)
		case model.MeasureVFDInstallation:
			assert.LessOrEqual(t, r.PaybackYears, c.VFD)
		case model.MeasureLightingRetrofit:
			assert.LessOrEqual(t, r.PaybackYears, c.Lighting)
		}
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].RankKey, r.RankKey)
		}
		if r.PaybackYears <= HighPriorityPaybackYears {
			assert.Equal(t, model.PriorityHigh, r.Priority)
		} else {
			assert.Equal(t, model.PriorityMedium, r.Priority)
		}
	}
	for _, r := range recs {
		assert.NotEqual(t, 5, r.SourceID, "IE4 group has nothing to gain")
	}
}

func TestRankTiesKeepCandidateOrder(t *testing.T) {
	res := &simulation.Results{
		MotorUpgrades: []model.MotorUpgradeResult{
			{MotorID: 1, CurrentClass: model.IE2, UpgradeCost: 300, CostSavings: 100, PaybackYears: 3},
			{MotorID: 2, CurrentClass: model.IE2, UpgradeCost: 600, CostSavings: 200, PaybackYears: 3},
		},
		VFDs: []model.VfdResult{
			{MotorID: 1, VFDCost: 300, CostSavings: 100, PaybackYears: 3},
		},
		Lighting: model.LightingResult{NumFixtures: 10, LEDWattage: 20, RetrofitCost: 300, CostSavings: 100, PaybackYears: 3},
	}
	recs := Rank(res, DefaultCeilings())
	require.Len(t, recs, 4)
	assert.Equal(t, model.MeasureMotorUpgrade, recs[0].MeasureType)
	assert.Equal(t, 1, recs[0].SourceID)
	assert.Equal(t, model.MeasureMotorUpgrade, recs[1].MeasureType)
	assert.Equal(t, 2, recs[1].SourceID)
	assert.Equal(t, model.MeasureVFDInstallation, recs[2].MeasureType)
	assert.Equal(t, model.MeasureLightingRetrofit, recs[3].MeasureType)
}

func TestRankEmptyWhenNothingQualifies(t *testing.T) {
	res := run(t, nil, lighting)
	recs := Rank(res, DefaultCeilings())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	assert.Nil(t, Rank(nil, DefaultCeilings()))
}

func TestRankNeverAdmitsMeasuresWithoutPayback(t *testing.T) {
	noSavings := lighting
	noSavings.ProposedLEDWattage = noSavings.WattagePerFixture
	res := run(t, []model.MotorGroup{
		{RatingKW: 11, Quantity: 3, LoadFactor: 1, CurrentClass: model.IE4, VFDApplicable: true},
	}, noSavings)
	require.False(t, model.HasPayback(res.MotorUpgrades[0].PaybackYears))
	require.False(t, model.HasPayback(res.VFDs[0].PaybackYears))
	require.False(t, model.HasPayback(res.Lighting.PaybackYears))

	recs := Rank(res, Ceilings{Motor: 1000, VFD: 1000, Lighting: 1000})
	assert.Empty(t, recs)
}

func TestRankLightingIncludedUnderCeiling(t *testing.T) {
	res := run(t, nil, lighting)
	recs := Rank(res, Ceilings{Motor: 5, VFD: 4, Lighting: 12})
	require.Len(t, recs, 1)
	assert.Equal(t, "LED Retrofit: 200 fixtures × 16W LED", recs[0].Description)
	assert.Equal(t, model.PriorityMedium, recs[0].Priority)
}

func TestRankZeroPaybackSortsLast(t *testing.T) {
	res := &simulation.Results{
		MotorUpgrades: []model.MotorUpgradeResult{
			{MotorID: 1, PaybackYears: 0},
			{MotorID: 2, PaybackYears: 1},
		},
		Lighting: model.LightingResult{PaybackYears: model.NoPaybackYears},
	}
	recs := Rank(res, DefaultCeilings())
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[0].SourceID)
	assert.Equal(t, 0.0, recs[1].RankKey)
}

func TestCeilingsWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultCeilings(), Ceilings{}.WithDefaults())
	assert.Equal(t, Ceilings{Motor: 3, VFD: 4, Lighting: 8}, Ceilings{Motor: 3, Lighting: 8}.WithDefaults())
}
