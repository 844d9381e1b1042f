package repositories

import (
	"context"

	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// FleetRepository serves the matcher's hot fleet-listing query over sqlx.
type FleetRepository struct {
	db *sqlx.DB
}

func NewFleetRepository(db *sqlx.DB) *FleetRepository {
	return &FleetRepository{db}
}

// ListAvailableWithCompany returns every available jet joined with its
// owning company, ordered by jet id.
func (r *FleetRepository) ListAvailableWithCompany(ctx context.Context) ([]entities.FleetJet, error) {
	var jets []entities.FleetJet
	if err := r.db.SelectContext(ctx, &jets, constants.ListAvailableFleet); err != nil {
		return nil, err
	}
	return jets, nil
}
