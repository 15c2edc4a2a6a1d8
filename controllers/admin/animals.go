package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetAnimals lists every animal with its owner.
func GetAnimals(c *fiber.Ctx) error {
	repo := repositories.NewAdminRepo(db.DB)
	animals, err := repo.Animals()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch animals",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewVetAnimalDTOs(animals))
}

// DeleteAnimal removes an animal by id.
func DeleteAnimal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid animal ID",
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	if err := repo.DeleteAnimal(uint(id)); err != nil {
		return utils.RepoError(c, err, "Failed to delete animal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
