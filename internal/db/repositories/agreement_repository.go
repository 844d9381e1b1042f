package repositories

import (
	"context"

	"charterhub/skybroker/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AgreementRepository handles charter agreement and commission records
type AgreementRepository struct {
	db *gormlib.DB
}

// NewAgreementRepository creates a new agreement repository
func NewAgreementRepository(db *gormlib.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

// FindByCompany returns the company's agreement, (nil, nil) when the
// company has none (bronze terms apply).
func (r *AgreementRepository) FindByCompany(ctx context.Context, companyID string) (*gorm.CharterAgreement, error) {
	var agreement gorm.CharterAgreement

	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&agreement).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &agreement, nil
}

// CommissionRate resolves the effective rate for a company.
func (r *AgreementRepository) CommissionRate(ctx context.Context, companyID string) (float64, error) {
	agreement, err := r.FindByCompany(ctx, companyID)
	if err != nil {
		return 0, err
	}
	if agreement == nil {
		return gorm.CommissionRateForTier(gorm.AgreementTierBronze), nil
	}
	if agreement.CommissionRate > 0 {
		return agreement.CommissionRate, nil
	}
	return gorm.CommissionRateForTier(agreement.Tier), nil
}

// RecordCommission stores the commission earned on one booking.
func (r *AgreementRepository) RecordCommission(ctx context.Context, tx *gorm.CommissionTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}
