package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// CreateVeterinaire opens a veterinarian account. Only admins reach this
// handler, role assignment is not exposed anywhere else.
func CreateVeterinaire(c *fiber.Ctx) error {
	user := new(models.User)
	if err := c.BodyParser(user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if user.Email == "" || user.Password == "" || user.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	if err := repo.CreateUserWithRole(user, models.RoleVeterinaire); err != nil {
		return utils.RepoError(c, err, "Failed to create veterinarian")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserDTO(*user))
}

// GetClients lists every client account.
func GetClients(c *fiber.Ctx) error {
	repo := repositories.NewAdminRepo(db.DB)
	users, err := repo.UsersByRole(models.RoleClient)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewUserDTOs(users))
}

// GetVeterinaires lists every veterinarian account.
func GetVeterinaires(c *fiber.Ctx) error {
	repo := repositories.NewAdminRepo(db.DB)
	users, err := repo.UsersByRole(models.RoleVeterinaire)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch veterinarians",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewUserDTOs(users))
}

// GetUser returns one user by id.
func GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	user, err := repo.GetUser(uint(id))
	if err != nil {
		return utils.RepoError(c, err, "Failed to fetch user")
	}
	return c.JSON(dto.NewUserDTO(user))
}

// DeleteUser removes a user by id.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	repo := repositories.NewAdminRepo(db.DB)
	if err := repo.DeleteUser(uint(id)); err != nil {
		return utils.RepoError(c, err, "Failed to delete user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
