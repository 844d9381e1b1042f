package repositories

import (
	"context"

	"charterhub/skybroker/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// BookingRepository handles booking table operations
type BookingRepository struct {
	db *gormlib.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gormlib.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create stores a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *gorm.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// GetByID finds a booking by id, (nil, nil) when missing
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*gorm.Booking, error) {
	var booking gorm.Booking

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&booking).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// UpdateStatus transitions a booking's status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListForJet returns a jet's bookings, optionally filtered by status
func (r *BookingRepository) ListForJet(ctx context.Context, jetID string, status string) ([]gorm.Booking, error) {
	var bookings []gorm.Booking

	q := r.db.WithContext(ctx).Where("jet_id = ?", jetID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	err := q.Order("departure_date").Find(&bookings).Error
	return bookings, err
}

// ListForCompany returns a company's bookings, newest first
func (r *BookingRepository) ListForCompany(ctx context.Context, companyID string) ([]gorm.Booking, error) {
	var bookings []gorm.Booking
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
