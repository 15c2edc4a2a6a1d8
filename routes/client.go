package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/controllers/client"
	"github.com/vetcare-app/vetcare-api/middleware"
	"github.com/vetcare-app/vetcare-api/models"
)

// SetupClientRoutes configures the pet-owner endpoints
func SetupClientRoutes(app *fiber.App) {
	clientGroup := app.Group("/client", middleware.Protected(), middleware.RequireRole(models.RoleClient))

	clientGroup.Get("/animals", client.GetAnimals)
	clientGroup.Get("/animals/:id", client.GetAnimal)
	clientGroup.Post("/animals", client.CreateAnimal)
	clientGroup.Patch("/animals/:id", client.UpdateAnimal)
	clientGroup.Delete("/animals/:id", client.DeleteAnimal)

	clientGroup.Get("/rendezvous", client.GetRendezVous)
	clientGroup.Post("/rendezvous", client.BookRendezVous)
	clientGroup.Patch("/rendezvous/:id/cancel", client.CancelRendezVous)

	clientGroup.Get("/consultations", client.GetConsultations)
	clientGroup.Get("/vaccinations", client.GetVaccinations)
	clientGroup.Get("/products", client.GetProducts)
}
