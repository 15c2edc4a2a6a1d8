package vet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetRendezVous lists the vet's rendez-vous, optionally filtered by status.
func GetRendezVous(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	status := models.RendezVousStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status filter",
		})
	}

	repo := repositories.NewVetRepo(db.DB)
	rdvs, err := repo.RendezVous(userID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch rendez-vous",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewRendezVousDTOs(rdvs))
}

// UpdateRendezVousStatus transitions one of the vet's own rendez-vous.
// 404 when the id doesn't exist, 403 when it belongs to another vet.
func UpdateRendezVousStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	rdvID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid rendez-vous ID",
		})
	}

	type StatusInput struct {
		Status models.RendezVousStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	repo := repositories.NewVetRepo(db.DB)
	rdv, err := repo.UpdateRendezVousStatus(userID, uint(rdvID), input.Status)
	if err != nil {
		return utils.RepoError(c, err, "Failed to update rendez-vous status")
	}
	return c.JSON(dto.NewRendezVousDTO(rdv))
}
