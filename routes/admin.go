package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/controllers/admin"
	"github.com/vetcare-app/vetcare-api/middleware"
	"github.com/vetcare-app/vetcare-api/models"
)

// SetupAdminRoutes configures the admin console endpoints
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	// Users
	adminGroup.Post("/veterinaires", admin.CreateVeterinaire)
	adminGroup.Get("/veterinaires", admin.GetVeterinaires)
	adminGroup.Get("/clients", admin.GetClients)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Delete("/users/:id", admin.DeleteUser)

	// Animals
	adminGroup.Get("/animals", admin.GetAnimals)
	adminGroup.Delete("/animals/:id", admin.DeleteAnimal)

	// Rendez-vous
	adminGroup.Get("/rendezvous", admin.GetRendezVous)
	adminGroup.Delete("/rendezvous/:id", admin.DeleteRendezVous)

	// Products
	adminGroup.Get("/products", admin.GetProducts)
	adminGroup.Post("/products", admin.CreateProduct)
	adminGroup.Patch("/products/:id", admin.UpdateProduct)
	adminGroup.Patch("/products/:id/availability", admin.SetProductAvailability)
	adminGroup.Delete("/products/:id", admin.DeleteProduct)
}
