package vet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetAnimals returns the animals the vet treats: the distinct set referenced
// by the vet's rendez-vous.
func GetAnimals(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	repo := repositories.NewVetRepo(db.DB)

	animals, err := repo.Animals(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch animals",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewVetAnimalDTOs(animals))
}
