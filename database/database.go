package database

import (
	"fmt"
	"log"
	"os"

	"bookly-backend/internal/domain/billing"
	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/notifications"
	"bookly-backend/internal/domain/plans"
	"bookly-backend/internal/domain/providers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&providers.Provider{},
		&providers.Settings{},
		&providers.ServiceType{},
		&plans.Plan{},

		// bookings & payments
		&bookings.Booking{},
		&billing.Payment{},

		// notifications
		&notifications.Notification{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
