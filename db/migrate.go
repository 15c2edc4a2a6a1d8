package db

import (
	"fmt"
	"log"

	"github.com/vetcare-app/vetcare-api/models"
)

func Migrate() {
	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Animal{},
		&models.RendezVous{},
		&models.Consultation{},
		&models.Vaccination{},
		&models.Product{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
