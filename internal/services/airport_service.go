package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/models/gorm"
)

// ErrInvalidIATA rejects malformed airport codes before any lookup.
var ErrInvalidIATA = errors.New(constants.ErrInvalidIATA)

const airportCacheTTL = 24 * time.Hour

// AirportService resolves IATA codes against the airports table with a
// read-through cache. Airports are immutable reference data, so a long
// TTL is safe.
type AirportService struct {
	repo  *repositories.AirportRepository
	cache common.CacheInterface
}

func NewAirportService(repo *repositories.AirportRepository, cache common.CacheInterface) *AirportService {
	return &AirportService{
		repo:  repo,
		cache: cache,
	}
}

// Lookup returns the airport for a code, (nil, nil) when unknown.
func (s *AirportService) Lookup(ctx context.Context, iata string) (*gorm.Airport, error) {
	code := common.NormalizeIATA(iata)
	if !common.ValidIATA(code) {
		return nil, ErrInvalidIATA
	}

	key := string(constants.CachePrefixAirport) + code
	if val, found := s.cache.Get(key); found {
		if airport, ok := val.(*gorm.Airport); ok {
			return airport, nil
		}
		// Redis round-trips values through JSON; fall through to the
		// repository when the cached shape does not assert back.
	}

	airport, err := s.repo.FindByIATA(ctx, code)
	if err != nil {
		return nil, err
	}
	if airport != nil {
		s.cache.Set(key, airport, airportCacheTTL)
	}
	return airport, nil
}

// Import batch-inserts reference airports, assigning ids to rows that
// arrive without one.
func (s *AirportService) Import(ctx context.Context, airports []gorm.Airport) error {
	for i := range airports {
		airports[i].IATA = common.NormalizeIATA(airports[i].IATA)
		if !common.ValidIATA(airports[i].IATA) {
			return ErrInvalidIATA
		}
		if airports[i].ID == "" {
			airports[i].ID = uuid.New().String()
		}
	}
	return s.repo.BatchInsert(ctx, airports)
}
