package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/controllers/vet"
	"github.com/vetcare-app/vetcare-api/middleware"
	"github.com/vetcare-app/vetcare-api/models"
)

// SetupVetRoutes configures the veterinarian endpoints
func SetupVetRoutes(app *fiber.App) {
	vetGroup := app.Group("/vet", middleware.Protected(), middleware.RequireRole(models.RoleVeterinaire))

	vetGroup.Get("/rendezvous", vet.GetRendezVous)
	vetGroup.Patch("/rendezvous/:id/status", vet.UpdateRendezVousStatus)

	vetGroup.Get("/animals", vet.GetAnimals)
	vetGroup.Get("/animals/:id/vaccinations", vet.GetAnimalVaccinations)
	vetGroup.Get("/clients", vet.GetClients)

	vetGroup.Get("/consultations", vet.GetConsultations)
	vetGroup.Post("/consultations", vet.CreateConsultation)

	vetGroup.Post("/vaccinations", vet.AddVaccination)
	vetGroup.Get("/products", vet.GetProducts)
}
