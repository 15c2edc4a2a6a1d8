package vet

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// AddVaccination records a vaccination for an animal the vet treats.
func AddVaccination(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	vaccination := new(models.Vaccination)
	if err := c.BodyParser(vaccination); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if vaccination.Name == "" || vaccination.AnimalID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	repo := repositories.NewVetRepo(db.DB)
	if err := repo.AddVaccination(userID, vaccination); err != nil {
		return utils.RepoError(c, err, "Failed to add vaccination")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewVaccinationDTO(*vaccination))
}

// GetAnimalVaccinations lists vaccinations for one animal the vet treats.
func GetAnimalVaccinations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	animalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid animal ID",
		})
	}

	repo := repositories.NewVetRepo(db.DB)
	vaccinations, err := repo.VaccinationsForAnimal(userID, uint(animalID))
	if err != nil {
		return utils.RepoError(c, err, "Failed to fetch vaccinations")
	}
	return c.JSON(dto.NewVaccinationDTOs(vaccinations))
}

// GetProducts lists products flagged available.
func GetProducts(c *fiber.Ctx) error {
	repo := repositories.NewVetRepo(db.DB)

	products, err := repo.AvailableProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewProductDTOs(products))
}
