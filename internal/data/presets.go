package data

import (
	"strings"

	"energy-retrofit/internal/model"
)

// DefaultFactoryType is used when a factory type has no preset of its own.
const DefaultFactoryType = "Textile"

// VFDLoadThreshold: groups running below this load factor are VFD candidates
// unless the inventory says otherwise.
const VFDLoadThreshold = 0.8

// FactoryPreset is a typical audit inventory for a factory type.
// Source names the preset actually used (after fallback).
type FactoryPreset struct {
	FactoryType string
	Source      string
	Motors      []model.MotorGroup
	Lighting    model.LightingConfig
}

type motorRow struct {
	rating     float64
	quantity   int
	loadFactor float64
	class      model.EfficiencyClass
}

type lightingRow struct {
	fixtureType string
	fixtures    int
	wattage     float64
	hoursPerDay float64
}

type presetRows struct {
	motors   []motorRow
	lighting lightingRow
}

var presets = map[string]presetRows{
	"Textile": {
		motors: []motorRow{
			{15, 8, 0.75, model.IE2},
			{22, 6, 0.80, model.IE2},
			{37, 4, 0.70, model.IE2},
			{55, 2, 0.85, model.IE1},
		},
		lighting: lightingRow{"Fluorescent", 200, 40, 16},
	},
	"Automotive": {
		motors: []motorRow{
			{18.5, 10, 0.65, model.IE2},
			{30, 8, 0.75, model.IE2},
			{45, 6, 0.80, model.IE2},
			{75, 3, 0.70, model.IE1},
		},
		lighting: lightingRow{"Metal Halide", 150, 250, 24},
	},
	"Food Processing": {
		motors: []motorRow{
			{11, 12, 0.60, model.IE2},
			{18.5, 8, 0.70, model.IE2},
			{22, 6, 0.75, model.IE2},
			{37, 4, 0.65, model.IE1},
		},
		lighting: lightingRow{"Fluorescent", 180, 60, 20},
	},
}

var factoryTypes = []string{
	"Textile",
	"Automotive",
	"Food Processing",
	"Chemical",
	"Metal Fabrication",
	"Plastics",
}

// FactoryTypes lists the selectable factory types in display order.
func FactoryTypes() []string {
	out := make([]string, len(factoryTypes))
	copy(out, factoryTypes)
	return out
}

// HasOwnPreset reports whether factoryType has a dedicated inventory.
func HasOwnPreset(factoryType string) bool {
	_, ok := presets[canonicalType(factoryType)]
	return ok
}

// Preset returns a fresh inventory for factoryType. Types without a
// dedicated inventory (including unknown ones) get the Textile inventory.
func Preset(factoryType string) FactoryPreset {
	name := canonicalType(factoryType)
	rows, ok := presets[name]
	source := name
	if !ok {
		rows = presets[DefaultFactoryType]
		source = DefaultFactoryType
	}
	if name == "" {
		name = DefaultFactoryType
	}

	p := FactoryPreset{
		FactoryType: name,
		Source:      source,
		Motors:      make([]model.MotorGroup, 0, len(rows.motors)),
		Lighting: model.LightingConfig{
			FixtureType:        rows.lighting.fixtureType,
			NumFixtures:        rows.lighting.fixtures,
			WattagePerFixture:  rows.lighting.wattage,
			DailyHours:         rows.lighting.hoursPerDay,
			ProposedLEDWattage: model.DefaultLEDWattage(rows.lighting.wattage),
		},
	}
	for _, m := range rows.motors {
		p.Motors = append(p.Motors, model.MotorGroup{
			RatingKW:      m.rating,
			Quantity:      m.quantity,
			LoadFactor:    m.loadFactor,
			CurrentClass:  m.class,
			VFDApplicable: DefaultVFDApplicable(m.loadFactor),
		})
	}
	return p
}

// DefaultVFDApplicable is the inventory default for the VFD flag.
func DefaultVFDApplicable(loadFactor float64) bool {
	return loadFactor < VFDLoadThreshold
}

// canonicalType matches factory types case-insensitively against the known list.
func canonicalType(s string) string {
	s = strings.TrimSpace(s)
	for _, ft := range factoryTypes {
		if strings.EqualFold(ft, s) {
			return ft
		}
	}
	return s
}
