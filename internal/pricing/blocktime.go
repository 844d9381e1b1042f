package pricing

import "math"

// TaxiClimbOverheadHours is the fixed taxi, climb and approach overhead
// added to every non-zero leg regardless of distance.
const TaxiClimbOverheadHours = 0.4

// BlockHours converts a leg distance and cruise speed into billable block
// hours. A zero-length leg contributes nothing; the minimum is not applied
// to it.
func BlockHours(distanceKm, cruiseSpeedKmh, minBlock float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return math.Max(distanceKm/cruiseSpeedKmh+TaxiClimbOverheadHours, minBlock)
}
