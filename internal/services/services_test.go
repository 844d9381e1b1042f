package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/db"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/models/gorm"
)

func newTestDB(t *testing.T) *gormlib.DB {
	t.Helper()

	conn, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return conn
}

func newTestAirportService(t *testing.T, conn *gormlib.DB) *AirportService {
	t.Helper()

	repo := repositories.NewAirportRepository(conn)
	svc := NewAirportService(repo, common.NewCacheService(60, 600))

	airports := []gorm.Airport{
		{ID: "ap-bre", IATA: "BRE", City: "Bremen", Country: "Germany", Latitude: 53.0475, Longitude: 8.7867},
		{ID: "ap-haj", IATA: "HAJ", City: "Hannover", Country: "Germany", Latitude: 52.4611, Longitude: 9.6850},
		{ID: "ap-lhr", IATA: "LHR", City: "London", Country: "United Kingdom", Latitude: 51.4700, Longitude: -0.4543},
		{ID: "ap-jfk", IATA: "JFK", City: "New York", Country: "United States", Latitude: 40.6413, Longitude: -73.7781},
	}
	if err := repo.BatchInsert(context.Background(), airports); err != nil {
		t.Fatalf("failed to seed airports: %v", err)
	}
	return svc
}

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 {
	return &v
}
