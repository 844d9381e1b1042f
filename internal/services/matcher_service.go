package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/geo"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/entities"
	"charterhub/skybroker/internal/pricing"
)

// FleetSource lists the jets open for matching. Implemented by the sqlx
// fleet repository in production and stubbed in tests.
type FleetSource interface {
	ListAvailableWithCompany(ctx context.Context) ([]entities.FleetJet, error)
}

// MatcherService selects the cheapest feasible jet for a charter request.
type MatcherService struct {
	airports *AirportService
	fleet    FleetSource
	nowFn    func() time.Time
}

func NewMatcherService(airports *AirportService, fleet FleetSource) *MatcherService {
	return &MatcherService{
		airports: airports,
		fleet:    fleet,
		nowFn:    time.Now,
	}
}

// Match enumerates the available fleet, filters by capacity, range
// feasibility and lead time, prices every candidate and returns the
// cheapest. Ties keep the first candidate in fleet iteration order, which
// is stable for a fixed fleet snapshot.
func (s *MatcherService) Match(ctx context.Context, req dtos.MatchRequest) (*dtos.MatchResult, error) {
	if req.Passengers <= 0 {
		return nil, errors.New(constants.ErrInvalidPassengers)
	}
	departure, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return nil, errors.New(constants.ErrInvalidDateTime)
	}

	from, err := s.airports.Lookup(ctx, req.FromIATA)
	if err != nil {
		return nil, err
	}
	to, err := s.airports.Lookup(ctx, req.ToIATA)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, errors.New(constants.ErrAirportNotFound)
	}

	jets, err := s.fleet.ListAvailableWithCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fleet: %w", err)
	}

	now := s.nowFn()
	mainDistance := geo.DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	hoursUntil := departure.Sub(now).Hours()

	var best *dtos.MatchResult
	candidates := 0

	for i := range jets {
		jet := &jets[i]

		if jet.Seats < req.Passengers {
			continue
		}

		ferryDistance := 0.0
		if jet.CurrentLat != nil && jet.CurrentLng != nil {
			ferryDistance = geo.DistanceKm(*jet.CurrentLat, *jet.CurrentLng, from.Latitude, from.Longitude)
		}

		// Full feasibility check, including the ferry and combined-range
		// fractions, applied uniformly to every candidate.
		if check := pricing.CheckRange(jet.RangeKm, mainDistance, ferryDistance); !check.OK {
			continue
		}

		// Lead-time feasibility uses a fixed conservative transit speed,
		// not the per-class cruise table.
		ferryDuration := 0.0
		if ferryDistance > 0 {
			ferryDuration = ferryDistance / constants.FerryTransitSpeedKmh
		}
		totalLeadTime := fleetLeadTimeHours(jet) + ferryDuration
		if hoursUntil < totalLeadTime {
			continue
		}

		breakdown, err := pricing.Quote(pricing.Request{
			Jet:             fleetPricingView(jet),
			MainDistanceKm:  mainDistance,
			FerryDistanceKm: ferryDistance,
			FromIATA:        from.IATA,
			ToIATA:          to.IATA,
			DepartureTime:   departure,
			Now:             now,
			Passengers:      req.Passengers,
			EnforceMinPrice: true,
		})
		if err != nil {
			// A jet that cannot be priced is excluded, never surfaced.
			if errors.Is(err, pricing.ErrInvalidRate) {
				logging.Warn("Excluding misconfigured jet from matching",
					"jet_id", jet.ID,
				)
				continue
			}
			return nil, err
		}
		candidates++

		if best == nil || breakdown.FinalPrice < best.TotalPrice {
			best = &dtos.MatchResult{
				JetID:              jet.ID,
				JetName:            jet.Name,
				JetType:            jet.Type,
				CompanyID:          jet.CompanyID,
				CompanyName:        jet.CompanyName,
				MainDistanceKm:     round1(mainDistance),
				FerryDistanceKm:    round1(ferryDistance),
				TotalLeadTimeHours: round1(totalLeadTime),
				TotalPrice:         breakdown.FinalPrice,
				Breakdown:          breakdown,
			}
			if jet.AllowEmptyLegs && ferryDistance > 0 {
				best.EmptyLeg = s.emptyLegOpportunity(jet, from.IATA, ferryDistance)
			} else {
				best.EmptyLeg = nil
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf(
			"no jet available for %s-%s with %d passengers (%.1f hours until departure); pick a later departure time or adjust the passenger count",
			from.IATA, to.IATA, req.Passengers, hoursUntil)
	}

	best.CandidatesPriced = candidates
	return best, nil
}

// emptyLegOpportunity describes the discounted ferry-leg offer a booking
// on this jet would create. Informational only.
func (s *MatcherService) emptyLegOpportunity(jet *entities.FleetJet, originIATA string, ferryDistance float64) *dtos.EmptyLegOpportunity {
	rate := pricing.FallbackHourlyRate(fleetClass(jet))
	if jet.PricePerHour != nil && *jet.PricePerHour > 0 {
		rate = *jet.PricePerHour
	}
	minPrice := jet.MinBookingPrice
	if minPrice <= 0 {
		minPrice = pricing.DefaultMinBookingPrice
	}

	normal, discounted, _ := emptyLegPricing(
		ferryDistance, constants.FerryTransitSpeedKmh, rate, minPrice, jet.EmptyLegDiscount)

	return &dtos.EmptyLegOpportunity{
		FromIATA:        jet.CurrentIATA,
		ToIATA:          originIATA,
		DistanceKm:      round1(ferryDistance),
		NormalPrice:     normal,
		DiscountedPrice: discounted,
		Discount:        jet.EmptyLegDiscount,
	}
}

func fleetClass(jet *entities.FleetJet) pricing.JetClass {
	if jet.Class != "" {
		for c := pricing.ClassVeryLight; c <= pricing.ClassBizliner; c++ {
			if c.String() == jet.Class {
				return c
			}
		}
	}
	return pricing.ClassifyType(jet.Type)
}

func fleetPricingView(jet *entities.FleetJet) pricing.Jet {
	return pricing.Jet{
		Class:           fleetClass(jet),
		HourlyRate:      jet.PricePerHour,
		MinBookingPrice: jet.MinBookingPrice,
		RangeKm:         jet.RangeKm,
		Seats:           jet.Seats,
	}
}

func fleetLeadTimeHours(jet *entities.FleetJet) float64 {
	if jet.LeadTimeHours <= 0 {
		return 4
	}
	return jet.LeadTimeHours
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
