package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/geo"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
	"charterhub/skybroker/internal/providers"
	"charterhub/skybroker/internal/services"
)

// Landing detection thresholds. A sample below both, within airport
// range of the booking destination, counts as a landing.
const (
	landingMaxGroundSpeedKts = 40.0
	landingMaxAltitudeFt     = 3000.0
	landingAirportRadiusKm   = 50.0
)

// PositionWorker polls the external tracking feed and keeps jet
// positions current. When a tracked jet comes to rest at the destination
// of its accepted booking, the booking completes and the jet returns to
// the available pool.
type PositionWorker struct {
	provider providers.PositionProvider
	jets     *repositories.JetRepository
	bookings *repositories.BookingRepository
	airports *services.AirportService
	booking  *services.BookingService
	interval time.Duration
}

func NewPositionWorker(
	provider providers.PositionProvider,
	jets *repositories.JetRepository,
	bookings *repositories.BookingRepository,
	airports *services.AirportService,
	booking *services.BookingService,
	interval time.Duration,
) *PositionWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PositionWorker{
		provider: provider,
		jets:     jets,
		bookings: bookings,
		airports: airports,
		booking:  booking,
		interval: interval,
	}
}

// Start polls on a ticker until the context is cancelled.
func (w *PositionWorker) Start(ctx context.Context) {
	logging.Info("Position worker started",
		"provider", w.provider.GetProviderType(),
		"interval", w.interval.String(),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Position worker shutting down")
			return
		case <-ticker.C:
			if err := w.poll(ctx); err != nil {
				logging.Error("Position poll failed", "error", err.Error())
			}
		}
	}
}

func (w *PositionWorker) poll(ctx context.Context) error {
	positions, err := w.provider.FetchPositions(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, pos := range positions {
		pos := pos
		g.Go(func() error {
			if err := w.applySample(gctx, pos); err != nil {
				logging.Warn("Failed to apply position sample",
					"jet_id", pos.JetID,
					"error", err.Error(),
				)
			}
			return nil
		})
	}

	return g.Wait()
}

// ApplySample records one position sample and runs landing detection.
// Exported for the manual position-update endpoint, which feeds the same
// path.
func (w *PositionWorker) ApplySample(ctx context.Context, pos dtos.JetPosition) error {
	return w.applySample(ctx, pos)
}

func (w *PositionWorker) applySample(ctx context.Context, pos dtos.JetPosition) error {
	jet, err := w.jets.GetByID(ctx, pos.JetID)
	if err != nil {
		return err
	}
	if jet == nil {
		// Feed can carry aircraft not in our fleet.
		return nil
	}

	if err := w.jets.UpdatePosition(ctx, jet.ID, pos.Lat, pos.Lng, ""); err != nil {
		return err
	}

	if pos.GroundSpeedKts >= landingMaxGroundSpeedKts || pos.AltitudeFt >= landingMaxAltitudeFt {
		return nil
	}

	return w.detectLanding(ctx, jet, pos)
}

func (w *PositionWorker) detectLanding(ctx context.Context, jet *gorm.Jet, pos dtos.JetPosition) error {
	accepted, err := w.bookings.ListForJet(ctx, jet.ID, gorm.BookingStatusAccepted)
	if err != nil {
		return err
	}

	for _, b := range accepted {
		dest, err := w.airports.Lookup(ctx, b.ToIATA)
		if err != nil || dest == nil {
			continue
		}
		if geo.DistanceKm(pos.Lat, pos.Lng, dest.Latitude, dest.Longitude) > landingAirportRadiusKm {
			continue
		}

		if err := w.booking.Complete(ctx, b.ID); err != nil {
			logging.Warn("Failed to complete booking on landing",
				"booking_id", b.ID,
				"error", err.Error(),
			)
			continue
		}

		if err := w.jets.UpdatePosition(ctx, jet.ID, dest.Latitude, dest.Longitude, dest.IATA); err != nil {
			logging.Warn("Failed to pin jet to arrival airport",
				"jet_id", jet.ID,
				"error", err.Error(),
			)
		}

		logging.Info("Landing detected, booking completed",
			"jet_id", jet.ID,
			"booking_id", b.ID,
			"airport", dest.IATA,
		)
		return nil
	}

	return nil
}
