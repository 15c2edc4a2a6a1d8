package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetRendezVous lists every rendez-vous.
func GetRendezVous(c *fiber.Ctx) error {
	repo := repositories.NewAdminRepo(db.DB)
	rdvs, err := repo.RendezVous()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch rendez-vous",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewRendezVousDTOs(rdvs))
}

// DeleteRendezVous removes a rendez-vous by id.
func DeleteRendezVous(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid rendez-vous ID",
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	if err := repo.DeleteRendezVous(uint(id)); err != nil {
		return utils.RepoError(c, err, "Failed to delete rendez-vous")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
