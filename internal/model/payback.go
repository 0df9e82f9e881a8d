package model

// NoPaybackYears is the payback reported when a measure saves nothing
// (annual savings <= 0). It is a display value, not a duration; test for it
// with HasPayback before doing arithmetic.
const NoPaybackYears = 999.0

// Payback returns investment / annualSavings, or NoPaybackYears when
// annualSavings is not positive.
func Payback(investment, annualSavings float64) float64 {
	if annualSavings <= 0 {
		return NoPaybackYears
	}
	return investment / annualSavings
}

// HasPayback reports whether years is a real payback period.
func HasPayback(years float64) bool {
	return years < NoPaybackYears
}
