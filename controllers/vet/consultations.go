package vet

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/dto"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/repositories"
	"github.com/vetcare-app/vetcare-api/utils"
)

// GetConsultations lists the consultations written by the vet.
func GetConsultations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	repo := repositories.NewVetRepo(db.DB)

	consultations, err := repo.Consultations(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch consultations",
			Error:   err.Error(),
		})
	}
	return c.JSON(dto.NewConsultationDTOs(consultations))
}

// CreateConsultation records the outcome of one of the vet's rendez-vous.
// Accepts multipart form data with an optional "document" file which is
// uploaded and referenced by URL.
func CreateConsultation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	rdvID, err := fiberFormInt(c, "rendez_vous_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rendez_vous_id is required",
		})
	}

	consultation := models.Consultation{
		Diagnostic:   c.FormValue("diagnostic"),
		Treatment:    c.FormValue("treatment"),
		Prescription: c.FormValue("prescription"),
		Notes:        c.FormValue("notes"),
		RendezVousID: uint(rdvID),
		Date:         time.Now(),
	}
	if dateStr := c.FormValue("date"); dateStr != "" {
		date, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format. Use RFC3339 (YYYY-MM-DDTHH:MM:SSZ)",
			})
		}
		consultation.Date = date
	}
	if consultation.Diagnostic == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "diagnostic is required",
		})
	}

	// Optional attached document
	if file, err := c.FormFile("document"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to open document",
			})
		}
		defer f.Close()

		publicID := fmt.Sprintf("consultation_%d_%s", rdvID, uuid.NewString())
		url, err := utils.UploadToCloudinary(f, publicID, "consultations")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to upload document",
				Error:   err.Error(),
			})
		}
		consultation.DocumentURL = url
	}

	repo := repositories.NewVetRepo(db.DB)
	if err := repo.CreateConsultation(userID, &consultation); err != nil {
		return utils.RepoError(c, err, "Failed to create consultation")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewConsultationDTO(consultation))
}

func fiberFormInt(c *fiber.Ctx, key string) (int, error) {
	var value int
	if _, err := fmt.Sscanf(c.FormValue(key), "%d", &value); err != nil {
		return 0, err
	}
	return value, nil
}
