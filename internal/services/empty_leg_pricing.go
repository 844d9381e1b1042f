package services

import (
	"math"

	"charterhub/skybroker/internal/constants"
)

// emptyLegPricing derives the normal and discounted price of a
// repositioning leg. Both the automatic generator and the matcher's
// opportunity payload price through here; only the speed assumption
// differs between call sites.
func emptyLegPricing(distanceKm, speedKmh, hourlyRate, minPrice, discountPct float64) (normal, discounted, blockHours float64) {
	blockHours = math.Max(distanceKm/speedKmh+0.4, constants.EmptyLegMinBlockHours)
	normal = math.Round(math.Max(blockHours*hourlyRate, minPrice))
	discounted = math.Round(normal * (1 - discountPct/100))
	return normal, discounted, blockHours
}
