package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/vetcare-app/vetcare-api/config"
	"github.com/vetcare-app/vetcare-api/cron"
	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/redis"
	"github.com/vetcare-app/vetcare-api/routes"
)

func main() {
	config.Load()
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()
	cron.StartCronJobs()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("VetCare API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupVetRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupVideoRoutes(app)

	log.Fatal(app.Listen(":" + config.C.Port))
}
