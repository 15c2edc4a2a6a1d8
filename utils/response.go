package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/repositories"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// RepoError maps a repository error to its HTTP status and writes the
// standard error body. NotFound and Forbidden stay distinct.
func RepoError(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repositories.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, repositories.ErrAlreadyExists):
		status = fiber.StatusConflict
	case errors.Is(err, repositories.ErrInvalidTransition):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
