package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetProducts lists products flagged available.
func GetProducts(c *fiber.Ctx) error {
	repo := repositories.NewClientRepo(db.DB)

	products, err := repo.AvailableProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewProductDTOs(products))
}
