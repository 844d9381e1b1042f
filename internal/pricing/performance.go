package pricing

// Performance and cost tiers are deliberately coarse per-class tables.
// Exact aircraft variants within a class share the same numbers.

// CruiseSpeedKmh returns the planning cruise speed for a jet class.
func CruiseSpeedKmh(c JetClass) float64 {
	switch c {
	case ClassVeryLight:
		return 620
	case ClassLight:
		return 700
	case ClassSuperLight:
		return 740
	case ClassMidsize:
		return 780
	case ClassSuperMidsize:
		return 830
	case ClassHeavy:
		return 860
	case ClassUltraLongRange:
		return 900
	case ClassBizliner:
		return 880
	default:
		return 780
	}
}

// MinBlockHours returns the minimum billable block time for a jet class.
func MinBlockHours(c JetClass) float64 {
	switch c {
	case ClassVeryLight:
		return 1.0
	case ClassLight, ClassSuperLight:
		return 1.5
	case ClassMidsize, ClassSuperMidsize:
		return 2.0
	case ClassHeavy, ClassBizliner:
		return 2.5
	case ClassUltraLongRange:
		return 3.0
	default:
		return 1.5
	}
}

// FallbackHourlyRate returns the hourly rate used when a jet has no
// configured price per hour.
func FallbackHourlyRate(c JetClass) float64 {
	switch c {
	case ClassVeryLight:
		return 2500
	case ClassLight:
		return 3500
	case ClassSuperLight:
		return 4000
	case ClassMidsize:
		return 4500
	case ClassSuperMidsize:
		return 5500
	case ClassHeavy:
		return 7500
	case ClassBizliner:
		return 8500
	case ClassUltraLongRange:
		return 9000
	default:
		return 4000
	}
}

// CrewCount returns the cockpit crew size used for crew cost. Heavy and
// ultra-long-range aircraft fly with an augmented crew.
func CrewCount(c JetClass) int {
	switch c {
	case ClassHeavy, ClassUltraLongRange, ClassBizliner:
		return 3
	default:
		return 2
	}
}

// FuelRatePerKm returns the long-haul fuel surcharge rate per km flown
// beyond the included allowance.
func FuelRatePerKm(c JetClass) float64 {
	switch c {
	case ClassSuperMidsize:
		return 0.8
	case ClassHeavy, ClassUltraLongRange, ClassBizliner:
		return 1.0
	default:
		return 0.6
	}
}
