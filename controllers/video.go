package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/utils"
)

// GetVideoToken issues a room-scoped video access token for the
// authenticated user. The token is returned opaque, never cached.
func GetVideoToken(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	roomName := c.Query("roomName")
	if roomName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "roomName query parameter is required",
		})
	}

	identity := fmt.Sprintf("user-%d", userID)
	token, err := utils.CreateVideoToken(identity, roomName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create video token",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token":    token,
		"identity": identity,
		"roomName": roomName,
	})
}
