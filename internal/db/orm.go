package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "charterhub/skybroker/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	log.Println("Connected to Postgres via GORM")
	return db, nil
}

// AutoMigrate creates or updates the marketplace schema, including the
// empty-leg idempotency index.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Airport{},
		&models.Jet{},
		&models.Booking{},
		&models.EmptyLeg{},
		&models.CharterAgreement{},
		&models.CommissionTransaction{},
	)
}
