package model

import "strings"

// EfficiencyClass is an IEC 60034-30 motor efficiency class.
// Keep these values stable; they appear in configs, CSV and API payloads.
type EfficiencyClass string

const (
	IE1 EfficiencyClass = "IE1"
	IE2 EfficiencyClass = "IE2"
	IE3 EfficiencyClass = "IE3"
	IE4 EfficiencyClass = "IE4"
)

// EfficiencyClasses lists the known classes from least to most efficient.
var EfficiencyClasses = []EfficiencyClass{IE1, IE2, IE3, IE4}

// FallbackClass is used for curves and prices when a class is not recognised.
const FallbackClass = IE2

// ParseEfficiencyClass normalises s ("ie3", " IE3 ") and reports whether it is known.
// Unknown input is returned as-is so that lookups apply the IE2 fallback.
func ParseEfficiencyClass(s string) (EfficiencyClass, bool) {
	c := EfficiencyClass(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.Known()
}

func (c EfficiencyClass) Known() bool {
	switch c {
	case IE1, IE2, IE3, IE4:
		return true
	default:
		return false
	}
}

// Description is the marketing name of the class.
func (c EfficiencyClass) Description() string {
	switch c {
	case IE1:
		return "Standard"
	case IE2:
		return "High"
	case IE3:
		return "Premium"
	case IE4:
		return "Super Premium"
	default:
		return "Unknown"
	}
}
