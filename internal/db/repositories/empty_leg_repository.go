package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"charterhub/skybroker/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// ErrDuplicateEmptyLeg marks an insert that collided with an existing
// offer for the same jet and repositioning window.
var ErrDuplicateEmptyLeg = errors.New("empty leg already exists for this window")

// EmptyLegRepository handles empty leg table operations
type EmptyLegRepository struct {
	db *gormlib.DB
}

// NewEmptyLegRepository creates a new empty leg repository
func NewEmptyLegRepository(db *gormlib.DB) *EmptyLegRepository {
	return &EmptyLegRepository{db: db}
}

// Create inserts a new offer. The unique index on
// (jet_id, from_iata, to_iata, available_until) is the idempotency guard
// against concurrent accept events; a collision surfaces as
// ErrDuplicateEmptyLeg.
func (r *EmptyLegRepository) Create(ctx context.Context, leg *gorm.EmptyLeg) error {
	err := r.db.WithContext(ctx).Create(leg).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmptyLeg
	}
	return err
}

// ExistsForWindow reports whether an active offer already covers the same
// jet and route window.
func (r *EmptyLegRepository) ExistsForWindow(ctx context.Context, jetID, fromIATA, toIATA string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gorm.EmptyLeg{}).
		Where("jet_id = ? AND from_iata = ? AND to_iata = ? AND is_active = ?",
			jetID, fromIATA, toIATA, true).
		Count(&count).Error
	return count > 0, err
}

// GetByID returns (nil, nil) when no offer matches.
func (r *EmptyLegRepository) GetByID(ctx context.Context, id string) (*gorm.EmptyLeg, error) {
	var leg gorm.EmptyLeg
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&leg).Error
	if errors.Is(err, gormlib.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &leg, nil
}

// ListActive returns all bookable offers at the given instant
func (r *EmptyLegRepository) ListActive(ctx context.Context, now time.Time) ([]gorm.EmptyLeg, error) {
	var legs []gorm.EmptyLeg
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND available_until > ?", true, now).
		Order("available_until").
		Find(&legs).Error
	return legs, err
}

// Deactivate turns an offer off. Terminal, not reversible.
func (r *EmptyLegRepository) Deactivate(ctx context.Context, id string, reason string) error {
	return r.db.WithContext(ctx).
		Model(&gorm.EmptyLeg{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "reason": reason}).Error
}

// MarkBooked deactivates an offer because it was sold
func (r *EmptyLegRepository) MarkBooked(ctx context.Context, id string) error {
	return r.Deactivate(ctx, id, "booked")
}

// ExpireOlderThan deactivates every offer whose window has passed and
// returns how many were expired.
func (r *EmptyLegRepository) ExpireOlderThan(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gorm.EmptyLeg{}).
		Where("is_active = ? AND available_until <= ?", true, now).
		Updates(map[string]interface{}{"is_active": false, "reason": "expired"})
	return res.RowsAffected, res.Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gormlib.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
