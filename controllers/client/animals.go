package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetAnimals godoc
// @Summary List the client's animals
// @Tags client
// @Produce json
// @Success 200 {array} dto.AnimalDTO
// @Failure 500 {object} utils.ErrorResponse
// @Router /client/animals [get]
func GetAnimals(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	repo := repositories.NewClientRepo(db.DB)

	animals, err := repo.AnimalsByOwner(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch animals",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewAnimalDTOs(animals))
}

// GetAnimal godoc
// @Summary Get one of the client's animals by ID
// @Tags client
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} dto.AnimalDTO
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /client/animals/{id} [get]
func GetAnimal(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	animalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid animal ID",
		})
	}

	repo := repositories.NewClientRepo(db.DB)
	animal, err := repo.AnimalByID(userID, uint(animalID))
	if err != nil {
		return utils.RepoError(c, err, "Failed to fetch animal")
	}
	return c.JSON(dto.NewAnimalDTO(animal))
}

// CreateAnimal registers a new animal owned by the logged-in client.
func CreateAnimal(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	animal := new(models.Animal)
	if err := c.BodyParser(animal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if animal.Name == "" || animal.Species == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	animal.OwnerID = userID

	repo := repositories.NewClientRepo(db.DB)
	if err := repo.CreateAnimal(animal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create animal",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewAnimalDTO(*animal))
}

// UpdateAnimal updates one of the client's animals.
func UpdateAnimal(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	animalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid animal ID",
		})
	}

	updates := new(models.Animal)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	repo := repositories.NewClientRepo(db.DB)
	animal, err := repo.UpdateAnimal(userID, uint(animalID), *updates)
	if err != nil {
		return utils.RepoError(c, err, "Failed to update animal")
	}
	return c.JSON(dto.NewAnimalDTO(animal))
}

// DeleteAnimal removes one of the client's animals.
func DeleteAnimal(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	animalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid animal ID",
		})
	}

	repo := repositories.NewClientRepo(db.DB)
	if err := repo.DeleteAnimal(userID, uint(animalID)); err != nil {
		return utils.RepoError(c, err, "Failed to delete animal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
