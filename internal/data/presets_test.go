package data

import (
	"testing"

	"energy-retrofit/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetTextile(t *testing.T) {
	p := Preset("Textile")
	assert.Equal(t, "Textile", p.FactoryType)
	assert.Equal(t, "Textile", p.Source)
	require.Len(t, p.Motors, 4)

	assert.Equal(t, model.MotorGroup{RatingKW: 15, Quantity: 8, LoadFactor: 0.75, CurrentClass: model.IE2, VFDApplicable: true}, p.Motors[0])
	// 0.80 is not below the VFD threshold.
	assert.False(t, p.Motors[1].VFDApplicable)
	assert.Equal(t, model.IE1, p.Motors[3].CurrentClass)

	assert.Equal(t, "Fluorescent", p.Lighting.FixtureType)
	assert.Equal(t, 200, p.Lighting.NumFixtures)
	assert.Equal(t, 16.0, p.Lighting.ProposedLEDWattage)
}

func TestPresetCaseInsensitive(t *testing.T) {
	p := Preset("food processing")
	assert.Equal(t, "Food Processing", p.FactoryType)
	assert.Equal(t, 180, p.Lighting.NumFixtures)
	assert.Equal(t, 24.0, p.Lighting.ProposedLEDWattage)
}

func TestPresetFallsBackToTextile(t *testing.T) {
	for _, ft := range []string{"Chemical", "Plastics", "Shipyard", ""} {
		p := Preset(ft)
		assert.Equal(t, DefaultFactoryType, p.Source, ft)
		assert.Equal(t, Preset("Textile").Motors, p.Motors, ft)
	}
	assert.Equal(t, "Chemical", Preset("chemical").FactoryType)
	assert.False(t, HasOwnPreset("Chemical"))
	assert.True(t, HasOwnPreset("automotive"))
}

func TestPresetReturnsFreshSlices(t *testing.T) {
	a := Preset("Automotive")
	a.Motors[0].RatingKW = 1
	b := Preset("Automotive")
	assert.Equal(t, 18.5, b.Motors[0].RatingKW)
}

func TestPresetsAreValid(t *testing.T) {
	for _, ft := range FactoryTypes() {
		p := Preset(ft)
		for _, m := range p.Motors {
			assert.NoError(t, m.Validate(), ft)
		}
		assert.NoError(t, p.Lighting.Validate(), ft)
	}
	assert.Len(t, FactoryTypes(), 6)
}
