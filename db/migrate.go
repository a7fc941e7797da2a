package db

import (
	"log"

	"github.com/fixnear/fixnear-backend/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.Booking{},
		&models.Availability{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations applied")
}
