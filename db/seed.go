package db

import (
	"log"

	"github.com/vetcare-app/vetcare-api/models"
)

// Seed creates the fixed roles if they don't exist yet.
func Seed() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleVeterinaire, Description: "Veterinarian managing rendez-vous and consultations"},
		{Name: models.RoleClient, Description: "Pet owner booking rendez-vous"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			if err := DB.Create(&role).Error; err != nil {
				log.Printf("Failed to seed role %s: %v", role.Name, err)
			}
		}
	}
}
