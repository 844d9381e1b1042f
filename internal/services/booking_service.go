package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/geo"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
	"charterhub/skybroker/internal/pricing"
)

// BookingEventPublisher pushes booking-accepted events onto the stream
// consumed by the empty-leg worker. Implemented by the Redis queue
// service.
type BookingEventPublisher interface {
	PublishBookingAccepted(ctx context.Context, streamName string, ev *common.BookingAcceptedEvent) error
}

// BookingService handles the booking lifecycle: creation with a binding
// price, operator accept/reject and completion on landing detection.
type BookingService struct {
	bookings   *repositories.BookingRepository
	jets       *repositories.JetRepository
	airports   *AirportService
	agreements *repositories.AgreementRepository
	publisher  BookingEventPublisher
	emptyLegs  *EmptyLegService
	nowFn      func() time.Time
}

func NewBookingService(
	bookings *repositories.BookingRepository,
	jets *repositories.JetRepository,
	airports *AirportService,
	agreements *repositories.AgreementRepository,
	publisher BookingEventPublisher,
	emptyLegs *EmptyLegService,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		jets:       jets,
		airports:   airports,
		agreements: agreements,
		publisher:  publisher,
		emptyLegs:  emptyLegs,
		nowFn:      time.Now,
	}
}

// Create prices and stores a new pending booking for one jet.
func (s *BookingService) Create(ctx context.Context, req dtos.BookingRequest) (*gorm.Booking, error) {
	if req.Passengers <= 0 {
		return nil, errors.New(constants.ErrInvalidPassengers)
	}
	if req.CustomerEmail == "" {
		return nil, errors.New("customer email is required")
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
	if jet.Seats < req.Passengers {
		return nil, fmt.Errorf("jet seats %d passengers, %d requested", jet.Seats, req.Passengers)
	}

	mainDistance := geo.DistanceKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)

	ferryDistance := 0.0
	if jet.HasPosition() {
		ferryDistance = geo.DistanceKm(*jet.CurrentLat, *jet.CurrentLng, from.Latitude, from.Longitude)
	}

	if check := pricing.CheckRange(jet.RangeKm, mainDistance, ferryDistance); !check.OK {
		return nil, errors.New(check.Reason)
	}

	now := s.nowFn()
	ferryDuration := 0.0
	if ferryDistance > 0 {
		ferryDuration = ferryDistance / constants.FerryTransitSpeedKmh
	}
	totalLeadTime := jet.EffectiveLeadTimeHours() + ferryDuration
	hoursUntil := departure.Sub(now).Hours()
	if hoursUntil < totalLeadTime {
		return nil, fmt.Errorf(
			"jet needs %.1f hours of lead time but departure is %.1f hours away; pick a later departure time",
			totalLeadTime, hoursUntil)
	}

	breakdown, err := pricing.Quote(pricing.Request{
		Jet:             jet.PricingView(),
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
		return nil, err
	}

	booking := &gorm.Booking{
		ID:            uuid.New().String(),
		JetID:         jet.ID,
		CompanyID:     jet.CompanyID,
		CustomerEmail: req.CustomerEmail,
		FromIATA:      from.IATA,
		ToIATA:        to.IATA,
		DepartureDate: departure,
		Passengers:    req.Passengers,
		Status:        gorm.BookingStatusPending,
		TotalPrice:    breakdown.FinalPrice,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	logging.Info("Booking created",
		"booking_id", booking.ID,
		"jet_id", jet.ID,
		"route", booking.FromIATA+"-"+booking.ToIATA,
		"total_price", booking.TotalPrice,
	)

	return booking, nil
}

// Accept transitions a pending booking to accepted, records the
// marketplace commission and hands the booking to the empty-leg pipeline.
func (s *BookingService) Accept(ctx context.Context, bookingID string) (*gorm.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.New(constants.ErrBookingNotFound)
	}
	if booking.Status != gorm.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s, only pending bookings can be accepted", booking.Status)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, gorm.BookingStatusAccepted); err != nil {
		return nil, err
	}
	booking.Status = gorm.BookingStatusAccepted

	if err := s.jets.UpdateStatus(ctx, booking.JetID, gorm.JetStatusBooked); err != nil {
		logging.Warn("Failed to update jet status on accept",
			"jet_id", booking.JetID,
			"error", err.Error(),
		)
	}

	if err := s.recordCommission(ctx, booking); err != nil {
		logging.Error("Failed to record commission",
			"booking_id", booking.ID,
			"error", err.Error(),
		)
	}

	// Hand off to the empty-leg pipeline: via the event stream when Redis
	// is wired, synchronously otherwise.
	if s.publisher != nil {
		ev := &common.BookingAcceptedEvent{
			BookingID:  booking.ID,
			JetID:      booking.JetID,
			CompanyID:  booking.CompanyID,
			AcceptedAt: s.nowFn(),
		}
		if err := s.publisher.PublishBookingAccepted(ctx, constants.BookingAcceptedStream, ev); err != nil {
			logging.Error("Failed to publish booking-accepted event",
				"booking_id", booking.ID,
				"error", err.Error(),
			)
		}
	} else if s.emptyLegs != nil {
		result, err := s.emptyLegs.GenerateFromBooking(ctx, booking.ID)
		if err != nil {
			logging.Error("Empty leg generation failed",
				"booking_id", booking.ID,
				"error", err.Error(),
			)
		} else if !result.Created {
			logging.Debug("Empty leg not created",
				"booking_id", booking.ID,
				"reason", result.Reason,
			)
		}
	}

	return booking, nil
}

// BookEmptyLeg sells an active empty-leg offer at its discounted price.
// The operator already published the offer, so the booking skips the
// pending stage and lands accepted; the offer itself goes to booked.
func (s *BookingService) BookEmptyLeg(ctx context.Context, legID string, req dtos.EmptyLegBookingRequest) (*gorm.Booking, error) {
	if req.Passengers <= 0 {
		return nil, errors.New(constants.ErrInvalidPassengers)
	}
	if req.CustomerEmail == "" {
		return nil, errors.New("customer email is required")
	}

	leg, err := s.emptyLegs.legs.GetByID(ctx, legID)
	if err != nil {
		return nil, err
	}
	if leg == nil {
		return nil, errors.New(constants.ErrEmptyLegNotFound)
	}
	if !leg.IsActive || !s.nowFn().Before(leg.AvailableUntil) {
		return nil, errors.New("empty leg is no longer available")
	}

	jet, err := s.jets.GetByID(ctx, leg.JetID)
	if err != nil {
		return nil, err
	}
	if jet == nil {
		return nil, errors.New(constants.ErrJetNotFound)
	}
	if jet.Seats < req.Passengers {
		return nil, fmt.Errorf("jet seats %d passengers, %d requested", jet.Seats, req.Passengers)
	}

	booking := &gorm.Booking{
		ID:            uuid.New().String(),
		JetID:         leg.JetID,
		CompanyID:     leg.CompanyID,
		CustomerEmail: req.CustomerEmail,
		FromIATA:      leg.FromIATA,
		ToIATA:        leg.ToIATA,
		DepartureDate: leg.AvailableUntil,
		Passengers:    req.Passengers,
		Status:        gorm.BookingStatusAccepted,
		TotalPrice:    leg.DiscountedPrice,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.emptyLegs.legs.MarkBooked(ctx, leg.ID); err != nil {
		return nil, err
	}

	if err := s.jets.UpdateStatus(ctx, leg.JetID, gorm.JetStatusBooked); err != nil {
		logging.Warn("Failed to update jet status on empty leg booking",
			"jet_id", leg.JetID,
			"error", err.Error(),
		)
	}

	if err := s.recordCommission(ctx, booking); err != nil {
		logging.Error("Failed to record commission",
			"booking_id", booking.ID,
			"error", err.Error(),
		)
	}

	logging.Info("Empty leg booked",
		"empty_leg_id", leg.ID,
		"booking_id", booking.ID,
		"route", leg.FromIATA+"-"+leg.ToIATA,
		"price", booking.TotalPrice,
	)

	return booking, nil
}

// Reject transitions a pending booking to rejected.
func (s *BookingService) Reject(ctx context.Context, bookingID string) (*gorm.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.New(constants.ErrBookingNotFound)
	}
	if booking.Status != gorm.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s, only pending bookings can be rejected", booking.Status)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, gorm.BookingStatusRejected); err != nil {
		return nil, err
	}
	booking.Status = gorm.BookingStatusRejected
	return booking, nil
}

// Complete marks an accepted booking completed. Invoked by the position
// worker on landing detection.
func (s *BookingService) Complete(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return errors.New(constants.ErrBookingNotFound)
	}
	if booking.Status != gorm.BookingStatusAccepted {
		return fmt.Errorf("booking is %s, only accepted bookings can complete", booking.Status)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, gorm.BookingStatusCompleted); err != nil {
		return err
	}
	return s.jets.UpdateStatus(ctx, booking.JetID, gorm.JetStatusAvailable)
}

func (s *BookingService) recordCommission(ctx context.Context, booking *gorm.Booking) error {
	rate, err := s.agreements.CommissionRate(ctx, booking.CompanyID)
	if err != nil {
		return err
	}
	return s.agreements.RecordCommission(ctx, &gorm.CommissionTransaction{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		CompanyID: booking.CompanyID,
		Rate:      rate,
		Amount:    math.Round(booking.TotalPrice * rate),
	})
}
