package api

import (
	"os"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/db"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/logging"
	"charterhub/skybroker/internal/metrics"
	"charterhub/skybroker/internal/services"
	"charterhub/skybroker/internal/workers"
)

type Repositories struct {
	Airports   *repositories.AirportRepository
	Jets       *repositories.JetRepository
	Fleet      *repositories.FleetRepository
	Bookings   *repositories.BookingRepository
	EmptyLegs  *repositories.EmptyLegRepository
	Agreements *repositories.AgreementRepository
	Keys       repositories.KeysRepo
}

type Services struct {
	Cache      common.CacheInterface
	Airports   *services.AirportService
	Quotes     *services.QuoteService
	Matcher    *services.MatcherService
	EmptyLegs  *services.EmptyLegService
	Bookings   *services.BookingService
	RedisQueue *common.RedisQueueService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Workers  *workers.WorkersContainer
}

// InitDependencies wires repositories and services. Redis is optional:
// without REDIS_HOST the cache falls back to in-memory and accepted
// bookings generate empty legs synchronously instead of via the stream.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Airports:   repositories.NewAirportRepository(db.PgDB),
		Jets:       repositories.NewJetRepository(db.PgDB),
		Fleet:      repositories.NewFleetRepository(db.DB),
		Bookings:   repositories.NewBookingRepository(db.PgDB),
		EmptyLegs:  repositories.NewEmptyLegRepository(db.PgDB),
		Agreements: repositories.NewAgreementRepository(db.PgDB),
		Keys:       *repositories.NewApiKeysRepo(db.DB),
	}

	var cacheSvc common.CacheInterface
	var queueSvc *common.RedisQueueService

	if os.Getenv("REDIS_HOST") != "" {
		client := common.NewRedisClient()
		redisCache, err := common.NewRedisCacheService(client)
		if err != nil {
			logging.Warn("Redis unreachable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(60000, 600)
		} else {
			cacheSvc = redisCache
			queueSvc = common.NewRedisQueueService(client)
		}
	} else {
		cacheSvc = common.NewCacheService(60000, 600)
	}

	airportSvc := services.NewAirportService(repos.Airports, cacheSvc)
	quoteSvc := services.NewQuoteService(airportSvc, repos.Jets)
	matcherSvc := services.NewMatcherService(airportSvc, repos.Fleet)
	emptyLegSvc := services.NewEmptyLegService(repos.Bookings, repos.Jets, airportSvc, repos.EmptyLegs)

	var publisher services.BookingEventPublisher
	if queueSvc != nil {
		publisher = queueSvc
	}
	bookingSvc := services.NewBookingService(repos.Bookings, repos.Jets, airportSvc, repos.Agreements, publisher, emptyLegSvc)

	svcs := &Services{
		Cache:      cacheSvc,
		Airports:   airportSvc,
		Quotes:     quoteSvc,
		Matcher:    matcherSvc,
		EmptyLegs:  emptyLegSvc,
		Bookings:   bookingSvc,
		RedisQueue: queueSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
