package database

import (
	"brickly-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// when running behind connection poolers (PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.KycProfile{},
		&models.VerificationToken{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Listing{},
		&models.ShareClass{},
		&models.Holding{},
		&models.SellOrder{},
		&models.Trade{},
		&models.RentalApplication{},
		&models.MLSListing{},
	)
}
