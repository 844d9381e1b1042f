package pricing

import "fmt"

const (
	// FerryRangeFraction caps how much of the range a repositioning leg
	// alone may consume.
	FerryRangeFraction = 0.6
	// CombinedRangeFraction reserves a safety margin for weather, routing
	// and fuel reserves.
	CombinedRangeFraction = 0.85
)

// RangeCheck is the outcome of a route feasibility check.
type RangeCheck struct {
	OK     bool
	Reason string
}

// CheckRange validates that a jet can fly the main route plus any
// repositioning leg within its range envelope. Checks are ordered; the
// first failure wins.
func CheckRange(rangeKm, mainDistanceKm, ferryDistanceKm float64) RangeCheck {
	if mainDistanceKm > rangeKm {
		return RangeCheck{Reason: fmt.Sprintf(
			"main route %.0f km exceeds aircraft range %.0f km", mainDistanceKm, rangeKm)}
	}
	if ferryDistanceKm > FerryRangeFraction*rangeKm {
		return RangeCheck{Reason: fmt.Sprintf(
			"repositioning leg %.0f km exceeds 60%% of aircraft range %.0f km", ferryDistanceKm, rangeKm)}
	}
	if mainDistanceKm+ferryDistanceKm > CombinedRangeFraction*rangeKm {
		return RangeCheck{Reason: fmt.Sprintf(
			"combined distance %.0f km exceeds 85%% of aircraft range %.0f km",
			mainDistanceKm+ferryDistanceKm, rangeKm)}
	}
	return RangeCheck{OK: true}
}
