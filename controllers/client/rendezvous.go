package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetRendezVous lists the client's rendez-vous, newest first.
func GetRendezVous(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	repo := repositories.NewClientRepo(db.DB)

	rdvs, err := repo.RendezVous(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch rendez-vous",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewRendezVousDTOs(rdvs))
}

// BookRendezVous books a pending rendez-vous for one of the client's animals.
func BookRendezVous(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	rdv := new(models.RendezVous)
	if err := c.BodyParser(rdv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if rdv.VetID == 0 || rdv.AnimalID == 0 || rdv.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	rdv.ClientID = userID

	repo := repositories.NewClientRepo(db.DB)
	if err := repo.BookRendezVous(rdv); err != nil {
		return utils.RepoError(c, err, "Failed to book rendez-vous")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewRendezVousDTO(*rdv))
}

// CancelRendezVous cancels one of the client's own pending rendez-vous.
func CancelRendezVous(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	rdvID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid rendez-vous ID",
		})
	}

	repo := repositories.NewClientRepo(db.DB)
	rdv, err := repo.CancelRendezVous(userID, uint(rdvID))
	if err != nil {
		return utils.RepoError(c, err, "Failed to cancel rendez-vous")
	}
	return c.JSON(dto.NewRendezVousDTO(rdv))
}
