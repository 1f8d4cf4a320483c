// Command devapi serves the HRMS REST contract on top of MySQL or Postgres,
// so the console has something to talk to during development.
package main

import (
	"hrms-console/config"
	"hrms-console/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	app := fiber.New(fiber.Config{AppName: "hrms-devapi"})

	app.Use(recover.New())
	app.Use(cors.New()) // the console may run on another port
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupEmployeeRoutes(app, db)
	routes.SetupAttendanceRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	log.Infof("devapi listening on :%s", cfg.APIPort)
	log.Fatal(app.Listen(":" + cfg.APIPort))
}
