package gorm

import "time"

// Commission tiers
const (
	AgreementTierBronze = "bronze"
	AgreementTierSilver = "silver"
	AgreementTierGold   = "gold"
)

// CommissionRateForTier maps a contract tier to its commission rate.
func CommissionRateForTier(tier string) float64 {
	switch tier {
	case AgreementTierSilver:
		return 0.08
	case AgreementTierGold:
		return 0.12
	default:
		return 0.06
	}
}

// CharterAgreement fixes the commission rate for a company.
type CharterAgreement struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid"`
	CompanyID      string    `gorm:"column:company_id;type:uuid;not null;uniqueIndex"`
	Tier           string    `gorm:"column:tier;default:bronze"`
	CommissionRate float64   `gorm:"column:commission_rate;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CharterAgreement) TableName() string {
	return "charter_agreements"
}
