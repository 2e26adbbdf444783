package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/bellavie/bella-booking/models"
)

func Migrate(conn *gorm.DB) {
	err := conn.AutoMigrate(
		&models.User{},
		&models.Artist{},
		&models.TimeSlot{},
		&models.Booking{},
		&models.Review{},
		&models.Favorite{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
