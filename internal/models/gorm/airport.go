package gorm

import "time"

// Airport represents immutable airport reference data, looked up by IATA
// code.
type Airport struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	IATA      string    `gorm:"column:iata;type:varchar(3);not null;uniqueIndex"`
	City      string    `gorm:"column:city;type:varchar(100)"`
	Country   string    `gorm:"column:country;type:varchar(100)"`
	Latitude  float64   `gorm:"column:latitude;type:numeric(10,6);not null"`
	Longitude float64   `gorm:"column:longitude;type:numeric(10,6);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
