package gorm

import "time"

// Company is a charter operator owning a fleet of jets.
type Company struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	Name         string    `gorm:"column:name;not null"`
	ContactEmail string    `gorm:"column:contact_email"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Jets []Jet `gorm:"foreignKey:CompanyID"`
}

// TableName specifies the table name for GORM
func (Company) TableName() string {
	return "companies"
}
