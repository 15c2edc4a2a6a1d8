package vet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetClients returns the clients having at least one rendez-vous with the
// vet.
func GetClients(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	repo := repositories.NewVetRepo(db.DB)

	clients, err := repo.Clients(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewUserDTOs(clients))
}
