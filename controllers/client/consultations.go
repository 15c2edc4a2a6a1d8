package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetConsultations lists consultations for the client's animals. An optional
// animalId query narrows the result to one animal.
func GetConsultations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	animalID := c.QueryInt("animalId")

	repo := repositories.NewClientRepo(db.DB)
	consultations, err := repo.Consultations(userID, uint(animalID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch consultations",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewConsultationDTOs(consultations))
}
