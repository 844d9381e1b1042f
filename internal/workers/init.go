package workers

import (
	"context"
	"os"
	"time"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/providers"
	"charterhub/skybroker/internal/services"
)

type WorkersContainer struct {
	EmptyLeg *EmptyLegWorker
	Expiry   *ExpiryWorker
	Position *PositionWorker
}

// InitWorkers wires and starts the background loops. The empty-leg
// worker only runs when Redis is configured; without it the booking
// service generates legs synchronously. The position worker only runs
// when the tracker feed is configured.
func InitWorkers(
	ctx context.Context,
	queue *common.RedisQueueService,
	emptyLegSvc *services.EmptyLegService,
	bookingSvc *services.BookingService,
	airportSvc *services.AirportService,
	legsRepo *repositories.EmptyLegRepository,
	jetsRepo *repositories.JetRepository,
	bookingsRepo *repositories.BookingRepository,
) *WorkersContainer {
	c := &WorkersContainer{}

	if queue != nil {
		c.EmptyLeg = NewEmptyLegWorker("empty-leg-worker-1", queue, emptyLegSvc)
		go c.EmptyLeg.Start(ctx)
	}

	c.Expiry = NewExpiryWorker(legsRepo, 5*time.Minute)
	go c.Expiry.Start(ctx)

	// The worker struct is always built so the manual position endpoint
	// can reuse its landing-detection path; the polling loop only runs
	// against a configured feed.
	var provider providers.PositionProvider
	if os.Getenv("TRACKER_API_KEY") != "" {
		provider = providers.NewTrackerAPIProvider()
	}
	c.Position = NewPositionWorker(provider, jetsRepo, bookingsRepo, airportSvc, bookingSvc, time.Minute)
	if provider != nil {
		go c.Position.Start(ctx)
	}

	return c
}
