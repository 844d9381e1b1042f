package pricing

// Airport tier tables for landing fees and demand bonuses. IATA codes,
// uppercase.

var tier1Airports = map[string]bool{
	"LHR": true,
	"JFK": true,
	"DXB": true,
	"LAX": true,
	"HKG": true,
	"SIN": true,
	"TEB": true,
}

var tier2Airports = map[string]bool{
	"FRA": true,
	"CDG": true,
	"ZRH": true,
	"GVA": true,
	"NCE": true,
	"IBZ": true,
	"PMI": true,
	"INN": true,
	"SMV": true,
	"ASE": true,
	"LBG": true,
	"VNY": true,
}

var partyDestinations = map[string]bool{
	"IBZ": true,
	"PMI": true,
	"JMK": true,
	"JTR": true,
	"NCE": true,
	"OLB": true,
}

var skiDestinations = map[string]bool{
	"GVA": true,
	"INN": true,
	"SMV": true,
	"CMF": true,
	"SZG": true,
	"ASE": true,
}

const (
	landingFeeTier1    = 1500.0
	landingFeeTier2    = 800.0
	landingFeeStandard = 350.0
)

// LandingFee returns the per-movement fee for one airport.
func LandingFee(iata string) float64 {
	switch {
	case tier1Airports[iata]:
		return landingFeeTier1
	case tier2Airports[iata]:
		return landingFeeTier2
	default:
		return landingFeeStandard
	}
}

// IsTier1Airport reports whether the airport is a tier-1 mega hub.
func IsTier1Airport(iata string) bool {
	return tier1Airports[iata]
}

// IsTier2Airport reports whether the airport is a tier-2 premium field.
func IsTier2Airport(iata string) bool {
	return tier2Airports[iata]
}

// IsPartyDestination reports whether the airport serves a summer hotspot.
func IsPartyDestination(iata string) bool {
	return partyDestinations[iata]
}

// IsSkiDestination reports whether the airport serves a ski resort.
func IsSkiDestination(iata string) bool {
	return skiDestinations[iata]
}
