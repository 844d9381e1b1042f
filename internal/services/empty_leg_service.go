package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/geo"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
	"charterhub/skybroker/internal/pricing"
)

// EmptyLegService derives discounted repositioning offers, either
// automatically from an accepted booking or manually from an operator
// form.
type EmptyLegService struct {
	bookings *repositories.BookingRepository
	jets     *repositories.JetRepository
	airports *AirportService
	legs     *repositories.EmptyLegRepository
	nowFn    func() time.Time
}

func NewEmptyLegService(
	bookings *repositories.BookingRepository,
	jets *repositories.JetRepository,
	airports *AirportService,
	legs *repositories.EmptyLegRepository,
) *EmptyLegService {
	return &EmptyLegService{
		bookings: bookings,
		jets:     jets,
		airports: airports,
		legs:     legs,
		nowFn:    time.Now,
	}
}

// GenerateFromBooking derives an empty leg from an accepted booking: the
// jet's repositioning flight from its last known position to the booking
// origin. Every negative outcome here is an expected business condition,
// reported as a no-op result rather than an error; the returned error is
// reserved for store failures.
func (s *EmptyLegService) GenerateFromBooking(ctx context.Context, bookingID string) (dtos.EmptyLegResult, error) {
	noop := func(reason string) dtos.EmptyLegResult {
		return dtos.EmptyLegResult{Created: false, Reason: reason}
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return dtos.EmptyLegResult{}, err
	}
	if booking == nil {
		return noop("booking not found"), nil
	}
	if booking.Status != gorm.BookingStatusAccepted {
		return noop("booking not accepted"), nil
	}

	jet, err := s.jets.GetByID(ctx, booking.JetID)
	if err != nil {
		return dtos.EmptyLegResult{}, err
	}
	if jet == nil {
		return noop("jet not found"), nil
	}
	if !jet.AllowEmptyLegs {
		return noop("jet does not allow empty legs"), nil
	}
	if !jet.HasPosition() {
		return noop("jet position unknown"), nil
	}
	if booking.FromIATA == "" {
		return noop("booking origin missing"), nil
	}
	if jet.CurrentIATA != "" && jet.CurrentIATA == booking.FromIATA {
		return noop("jet already at booking origin"), nil
	}

	origin, err := s.airports.Lookup(ctx, booking.FromIATA)
	if err != nil && !errors.Is(err, ErrInvalidIATA) {
		return dtos.EmptyLegResult{}, err
	}
	if origin == nil {
		return noop("origin airport not found"), nil
	}

	distance := geo.DistanceKm(*jet.CurrentLat, *jet.CurrentLng, origin.Latitude, origin.Longitude)
	if distance < 1 {
		return noop("jet already at booking origin"), nil
	}

	rate := pricing.FallbackHourlyRate(jet.JetClass())
	if jet.PricePerHour != nil && *jet.PricePerHour > 0 {
		rate = *jet.PricePerHour
	}

	normal, discounted, blockHours := emptyLegPricing(
		distance, constants.FerryTransitSpeedKmh, rate,
		jet.EffectiveMinBookingPrice(), jet.EmptyLegDiscount)

	// The offer must close early enough to still fly the repositioning
	// leg and observe the jet's lead time before the booked departure.
	availableUntil := booking.DepartureDate.
		Add(-time.Duration(jet.EffectiveLeadTimeHours() * float64(time.Hour))).
		Add(-time.Duration(blockHours * float64(time.Hour))).
		Add(-time.Duration(constants.EmptyLegSafetyBufferHours * float64(time.Hour)))

	if !availableUntil.After(s.nowFn()) {
		return noop("window already expired"), nil
	}

	exists, err := s.legs.ExistsForWindow(ctx, jet.ID, jet.CurrentIATA, origin.IATA)
	if err != nil {
		return dtos.EmptyLegResult{}, err
	}
	if exists {
		return noop("active offer already exists for this window"), nil
	}

	leg := &gorm.EmptyLeg{
		ID:              uuid.New().String(),
		JetID:           jet.ID,
		CompanyID:       jet.CompanyID,
		FromIATA:        jet.CurrentIATA,
		FromLat:         *jet.CurrentLat,
		FromLng:         *jet.CurrentLng,
		ToIATA:          origin.IATA,
		ToLat:           origin.Latitude,
		ToLng:           origin.Longitude,
		NormalPrice:     normal,
		DiscountedPrice: discounted,
		Discount:        jet.EmptyLegDiscount,
		AvailableUntil:  availableUntil,
		IsActive:        true,
		Reason:          fmt.Sprintf("repositioning for booking %s", booking.ID),
		Source:          gorm.EmptyLegSourceAuto,
	}

	if err := s.legs.Create(ctx, leg); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmptyLeg) {
			return noop("active offer already exists for this window"), nil
		}
		return dtos.EmptyLegResult{}, err
	}

	logging.Info("Empty leg created",
		"empty_leg_id", leg.ID,
		"jet_id", jet.ID,
		"route", leg.FromIATA+"-"+leg.ToIATA,
		"discounted_price", discounted,
	)

	return dtos.EmptyLegResult{
		Created:        true,
		EmptyLegID:     leg.ID,
		AvailableUntil: availableUntil,
	}, nil
}

// CreateManual records an operator-entered hot deal. Unlike the automatic
// path, bad input here is a real error surfaced to the form.
func (s *EmptyLegService) CreateManual(ctx context.Context, companyID string, req dtos.ManualDealRequest) (*gorm.EmptyLeg, error) {
	if req.Discount < 0 || req.Discount > 100 {
		return nil, errors.New("discount must be between 0 and 100")
	}
	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		return nil, errors.New(constants.ErrInvalidDateTime)
	}

	jet, err := s.jets.GetByID(ctx, req.JetID)
	if err != nil {
		return nil, err
	}
	if jet == nil {
		return nil, errors.New(constants.ErrJetNotFound)
	}
	if companyID != "" && jet.CompanyID != companyID {
		return nil, errors.New("jet does not belong to this company")
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

	distance := geo.DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)

	rate := pricing.FallbackHourlyRate(jet.JetClass())
	if jet.PricePerHour != nil && *jet.PricePerHour > 0 {
		rate = *jet.PricePerHour
	}

	// Operator-facing tool: a simpler average-speed assumption than the
	// matching path.
	normal, discounted, _ := emptyLegPricing(
		distance, constants.ManualDealSpeedKmh, rate,
		jet.EffectiveMinBookingPrice(), req.Discount)

	availableUntil := departure.Add(-time.Duration(req.AvailableHoursBefore * float64(time.Hour)))

	leg := &gorm.EmptyLeg{
		ID:              uuid.New().String(),
		JetID:           jet.ID,
		CompanyID:       jet.CompanyID,
		FromIATA:        from.IATA,
		FromLat:         from.Latitude,
		FromLng:         from.Longitude,
		ToIATA:          to.IATA,
		ToLat:           to.Latitude,
		ToLng:           to.Longitude,
		NormalPrice:     normal,
		DiscountedPrice: discounted,
		Discount:        req.Discount,
		AvailableUntil:  availableUntil,
		IsActive:        true,
		Reason:          req.Reason,
		Source:          gorm.EmptyLegSourceManual,
	}

	if err := s.legs.Create(ctx, leg); err != nil {
		return nil, err
	}

	// A repositioning deal implies the jet is sitting at the deal origin.
	if req.Reason == "repositioning" {
		if err := s.jets.UpdatePosition(ctx, jet.ID, from.Latitude, from.Longitude, from.IATA); err != nil {
			logging.Warn("Failed to update jet position for repositioning deal",
				"jet_id", jet.ID,
				"error", err.Error(),
			)
		}
	}

	return leg, nil
}

// ListActive returns the currently bookable offers.
func (s *EmptyLegService) ListActive(ctx context.Context) ([]gorm.EmptyLeg, error) {
	return s.legs.ListActive(ctx, s.nowFn())
}
