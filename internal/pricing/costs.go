package pricing

import "math"

const (
	// RoundtripFactor models a more efficient return leg. Intentionally
	// below 2.0.
	RoundtripFactor = 1.8

	crewRatePerPilotHour = 200.0
	passengerFeePerHead  = 150.0
	includedPassengers   = 4
	fuelAllowanceKm      = 2000.0
)

// FlightCost is the raw aircraft cost over total block hours.
func FlightCost(totalBlockHours, hourlyRate float64) float64 {
	return totalBlockHours * hourlyRate
}

// CrewCost bills full started hours per crew member.
func CrewCost(totalBlockHours float64, class JetClass) float64 {
	return math.Ceil(totalBlockHours) * float64(CrewCount(class)) * crewRatePerPilotHour
}

// LandingFees sums the tiered per-airport fee for both ends of the route,
// doubled for a roundtrip. Two tier-1 airports pay the full fee twice.
func LandingFees(fromIATA, toIATA string, roundtrip bool) float64 {
	fees := LandingFee(fromIATA) + LandingFee(toIATA)
	if roundtrip {
		fees *= 2
	}
	return fees
}

// FuelSurcharge applies beyond the included distance allowance. The caller
// passes the roundtrip-adjusted main distance when applicable.
func FuelSurcharge(mainDistanceKm float64, class JetClass) float64 {
	if mainDistanceKm <= fuelAllowanceKm {
		return 0
	}
	return (mainDistanceKm - fuelAllowanceKm) * FuelRatePerKm(class)
}

// PassengerFee charges only passengers beyond the fourth.
func PassengerFee(passengers int) float64 {
	if passengers <= includedPassengers {
		return 0
	}
	return float64(passengers-includedPassengers) * passengerFeePerHead
}
