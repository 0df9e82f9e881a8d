package model

import "strings"

// LightingTechnology is a reference entry for a lamp technology.
type LightingTechnology struct {
	Name           string  `json:"name"`
	EfficacyLmPerW float64 `json:"efficacy_lm_per_w"`
	LifetimeHours  float64 `json:"lifetime_hours"`
	CostPerUnit    float64 `json:"cost_per_unit"`
}

const LEDTechnologyName = "LED"

var lightingTechnologies = []LightingTechnology{
	{Name: "Incandescent", EfficacyLmPerW: 15, LifetimeHours: 1000, CostPerUnit: 2},
	{Name: "Fluorescent", EfficacyLmPerW: 60, LifetimeHours: 8000, CostPerUnit: 8},
	{Name: "CFL", EfficacyLmPerW: 65, LifetimeHours: 10000, CostPerUnit: 5},
	{Name: "Metal Halide", EfficacyLmPerW: 80, LifetimeHours: 15000, CostPerUnit: 50},
	{Name: LEDTechnologyName, EfficacyLmPerW: 120, LifetimeHours: 50000, CostPerUnit: 15},
}

// LightingTechnologies returns the catalog in display order.
func LightingTechnologies() []LightingTechnology {
	out := make([]LightingTechnology, len(lightingTechnologies))
	copy(out, lightingTechnologies)
	return out
}

// LookupLightingTechnology finds a catalog entry by case-insensitive name.
func LookupLightingTechnology(name string) (LightingTechnology, bool) {
	for _, lt := range lightingTechnologies {
		if strings.EqualFold(lt.Name, strings.TrimSpace(name)) {
			return lt, true
		}
	}
	return LightingTechnology{}, false
}

// LEDTechnology is the retrofit target.
func LEDTechnology() LightingTechnology {
	lt, _ := LookupLightingTechnology(LEDTechnologyName)
	return lt
}
