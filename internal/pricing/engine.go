package pricing

import (
	"errors"
	"math"
	"time"
)

const (
	// FerryMinBlockHours is the lower minimum applied to repositioning
	// legs, which are typically short hops.
	FerryMinBlockHours = 0.7

	// DefaultMinBookingPrice is the floor used when a jet has no
	// configured minimum.
	DefaultMinBookingPrice = 5000.0
)

// ErrInvalidRate marks a jet whose resolved hourly rate is non-positive.
// Such a jet cannot be priced and must be excluded from matching.
var ErrInvalidRate = errors.New("jet has no usable hourly rate")

// Jet is the pricing view of an aircraft. HourlyRate nil means no
// configured rate and the per-class fallback applies.
type Jet struct {
	Class           JetClass
	HourlyRate      *float64
	MinBookingPrice float64
	RangeKm         float64
	Seats           int
}

// Request carries everything a single quote needs. Now is explicit so
// quotes are deterministic and testable.
type Request struct {
	Jet             Jet
	MainDistanceKm  float64
	FerryDistanceKm float64
	FromIATA        string
	ToIATA          string
	DepartureTime   time.Time
	Now             time.Time
	Passengers      int
	EmptyLeg        bool
	Roundtrip       bool
	EnforceMinPrice bool
}

// Breakdown is the full quote returned to callers. Block hours carry two
// decimals, money figures whole currency units.
type Breakdown struct {
	BlockMainHours  float64  `json:"block_main_h"`
	BlockFerryHours float64  `json:"block_ferry_h"`
	BlockTotalHours float64  `json:"block_total_h"`
	HourlyRate      float64  `json:"hourly_rate"`
	FlightCost      float64  `json:"flight_cost"`
	CrewCost        float64  `json:"crew_cost"`
	LandingFees     float64  `json:"landing_fees"`
	FuelSurcharge   float64  `json:"fuel_surcharge"`
	PassengerFees   float64  `json:"passenger_fees"`
	DemandFactor    float64  `json:"demand_factor"`
	DemandReasons   []string `json:"demand_reasons"`
	MinPriceApplied bool     `json:"min_price_applied"`
	FinalPrice      float64  `json:"final_price"`
}

// Quote computes the final price and full cost breakdown for one request.
// The single canonical implementation; matcher, direct quotes, simulation
// and empty-leg generation all price through here.
func Quote(req Request) (Breakdown, error) {
	class := req.Jet.Class

	rate := FallbackHourlyRate(class)
	if req.Jet.HourlyRate != nil {
		rate = *req.Jet.HourlyRate
	}
	if rate <= 0 {
		return Breakdown{}, ErrInvalidRate
	}

	speed := CruiseSpeedKmh(class)

	mainBlock := BlockHours(req.MainDistanceKm, speed, MinBlockHours(class))
	ferryBlock := BlockHours(req.FerryDistanceKm, speed, FerryMinBlockHours)
	totalBlock := mainBlock + ferryBlock

	fuelDistance := req.MainDistanceKm
	if req.Roundtrip {
		// Main-only figure is scaled too so ferry-cost deltas computed
		// against it stay comparable.
		totalBlock *= RoundtripFactor
		mainBlock *= RoundtripFactor
		fuelDistance *= RoundtripFactor
	}

	flightCost := FlightCost(totalBlock, rate)
	crewCost := CrewCost(totalBlock, class)
	landingFees := LandingFees(req.FromIATA, req.ToIATA, req.Roundtrip)
	fuelSurcharge := FuelSurcharge(fuelDistance, class)
	passengerFees := PassengerFee(req.Passengers)

	factor, reasons := DemandFactor(DemandInput{
		DepartureTime:  req.DepartureTime,
		Now:            req.Now,
		FromIATA:       req.FromIATA,
		ToIATA:         req.ToIATA,
		MainDistanceKm: req.MainDistanceKm,
		EmptyLeg:       req.EmptyLeg,
	})

	total := (flightCost + crewCost + landingFees + fuelSurcharge + passengerFees) * factor

	minApplied := false
	if req.EnforceMinPrice && !req.EmptyLeg {
		minPrice := req.Jet.MinBookingPrice
		if minPrice <= 0 {
			minPrice = DefaultMinBookingPrice
		}
		if total < minPrice {
			total = minPrice
			minApplied = true
		}
	}

	return Breakdown{
		BlockMainHours:  round2(mainBlock),
		BlockFerryHours: round2(ferryBlock),
		BlockTotalHours: round2(totalBlock),
		HourlyRate:      math.Round(rate),
		FlightCost:      math.Round(flightCost),
		CrewCost:        math.Round(crewCost),
		LandingFees:     math.Round(landingFees),
		FuelSurcharge:   math.Round(fuelSurcharge),
		PassengerFees:   math.Round(passengerFees),
		DemandFactor:    round2(factor),
		DemandReasons:   reasons,
		MinPriceApplied: minApplied,
		FinalPrice:      math.Round(total),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
