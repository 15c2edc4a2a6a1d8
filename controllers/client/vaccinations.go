package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetVaccinations lists vaccinations across the client's animals, or for one
// animal when animalId is given.
func GetVaccinations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	animalID := c.QueryInt("animalId")

	repo := repositories.NewClientRepo(db.DB)
	vaccinations, err := repo.Vaccinations(userID, uint(animalID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch vaccinations",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewVaccinationDTOs(vaccinations))
}
