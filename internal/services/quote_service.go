package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/geo"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/pricing"
)

// QuoteService prices direct quotes and pricing simulations through the
// one canonical engine.
type QuoteService struct {
	airports *AirportService
	jets     *repositories.JetRepository
	nowFn    func() time.Time
}

func NewQuoteService(airports *AirportService, jets *repositories.JetRepository) *QuoteService {
	return &QuoteService{
		airports: airports,
		jets:     jets,
		nowFn:    time.Now,
	}
}

// DirectQuote prices one specific jet on a route. The repositioning leg
// from the jet's last known position is included when the position is
// known.
func (s *QuoteService) DirectQuote(ctx context.Context, req dtos.QuoteRequest) (*dtos.QuoteResponse, error) {
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

	jet, err := s.jets.GetByID(ctx, req.JetID)
	if err != nil {
		return nil, err
	}
	if jet == nil {
		return nil, errors.New(constants.ErrJetNotFound)
	}

	mainDistance := geo.DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)

	ferryDistance := 0.0
	if jet.HasPosition() {
		ferryDistance = geo.DistanceKm(*jet.CurrentLat, *jet.CurrentLng, from.Latitude, from.Longitude)
	}

	if check := pricing.CheckRange(jet.RangeKm, mainDistance, ferryDistance); !check.OK {
		return nil, errors.New(check.Reason)
	}

	breakdown, err := pricing.Quote(pricing.Request{
		Jet:             jet.PricingView(),
		MainDistanceKm:  mainDistance,
		FerryDistanceKm: ferryDistance,
		FromIATA:        from.IATA,
		ToIATA:          to.IATA,
		DepartureTime:   departure,
		Now:             s.nowFn(),
		Passengers:      req.Passengers,
		Roundtrip:       req.Roundtrip,
		EnforceMinPrice: true,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRate) {
			return nil, fmt.Errorf("jet %s cannot be priced: %w", jet.ID, err)
		}
		return nil, err
	}

	return &dtos.QuoteResponse{
		JetID:      jet.ID,
		JetName:    jet.Name,
		TotalPrice: breakdown.FinalPrice,
		Breakdown:  breakdown,
	}, nil
}

// Simulate prices a hypothetical flight with explicit ferry figures. Used
// by operators to inspect pricing configuration, so the range check is
// skipped on purpose.
func (s *QuoteService) Simulate(ctx context.Context, req dtos.SimulateRequest) (*dtos.QuoteResponse, error) {
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

	jet, err := s.jets.GetByID(ctx, req.JetID)
	if err != nil {
		return nil, err
	}
	if jet == nil {
		return nil, errors.New(constants.ErrJetNotFound)
	}

	mainDistance := geo.DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)

	breakdown, err := pricing.Quote(pricing.Request{
		Jet:             jet.PricingView(),
		MainDistanceKm:  mainDistance,
		FerryDistanceKm: req.FerryDistanceKm,
		FromIATA:        from.IATA,
		ToIATA:          to.IATA,
		DepartureTime:   departure,
		Now:             s.nowFn(),
		Passengers:      req.Passengers,
		EmptyLeg:        req.EmptyLeg,
		Roundtrip:       req.Roundtrip,
		EnforceMinPrice: true,
	})
	if err != nil {
		return nil, err
	}

	return &dtos.QuoteResponse{
		JetID:      jet.ID,
		JetName:    jet.Name,
		TotalPrice: breakdown.FinalPrice,
		Breakdown:  breakdown,
	}, nil
}
