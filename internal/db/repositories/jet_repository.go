package repositories

import (
	"context"

	"charterhub/skybroker/internal/models/gorm"
	"charterhub/skybroker/internal/pricing"

	gormlib "gorm.io/gorm"
)

// JetRepository handles jet table operations
type JetRepository struct {
	db *gormlib.DB
}

// NewJetRepository creates a new jet repository
func NewJetRepository(db *gormlib.DB) *JetRepository {
	return &JetRepository{db: db}
}

// GetByID finds a jet by id, (nil, nil) when missing
func (r *JetRepository) GetByID(ctx context.Context, id string) (*gorm.Jet, error) {
	var jet gorm.Jet

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jet).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &jet, nil
}

// Create stores a new jet, classifying its type once at ingestion.
func (r *JetRepository) Create(ctx context.Context, jet *gorm.Jet) error {
	jet.Class = pricing.ClassifyType(jet.Type).String()
	return r.db.WithContext(ctx).Create(jet).Error
}

// Update saves changed fields, re-deriving the class when the type moved.
func (r *JetRepository) Update(ctx context.Context, jet *gorm.Jet) error {
	jet.Class = pricing.ClassifyType(jet.Type).String()
	return r.db.WithContext(ctx).Save(jet).Error
}

// ListByCompany returns a company's fleet.
func (r *JetRepository) ListByCompany(ctx context.Context, companyID string) ([]gorm.Jet, error) {
	var jets []gorm.Jet
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&jets).Error
	return jets, err
}

// UpdatePosition stores a last-known position sample from the live feed.
func (r *JetRepository) UpdatePosition(ctx context.Context, id string, lat, lng float64, iata string) error {
	updates := map[string]interface{}{
		"current_lat": lat,
		"current_lng": lng,
	}
	if iata != "" {
		updates["current_iata"] = iata
	}
	return r.db.WithContext(ctx).
		Model(&gorm.Jet{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpdateStatus transitions a jet's lifecycle status.
func (r *JetRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Jet{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a jet from the fleet.
func (r *JetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gorm.Jet{}).Error
}
