package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare-app/vetcare-api/controllers"
	"github.com/vetcare-app/vetcare-api/middleware"
)

// SetupVideoRoutes configures the video token endpoint, open to any
// authenticated role
func SetupVideoRoutes(app *fiber.App) {
	video := app.Group("/video", middleware.Protected())
	video.Get("/token", controllers.GetVideoToken)
}
