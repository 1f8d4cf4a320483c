// Command web serves the HRMS Lite console: server-rendered pages driven by page
// controllers that talk to the HRMS REST backend at API_BASE_URL.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hrms-console/config"
	"hrms-console/internal/client"
	"hrms-console/internal/console"
	"hrms-console/internal/page"
	"hrms-console/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	api := client.New(cfg.APIBaseURL)
	hdl := console.NewHandler(
		client.NewEmployeeAPI(api),
		client.NewAttendanceAPI(api),
		page.Options{BannerTTL: cfg.BannerTTL},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := console.NewStore()
	go store.Run(ctx, cfg.SessionIdle)

	app := fiber.New(fiber.Config{
		AppName:      "hrms-console",
		Views:        console.NewEngine(),
		ViewsLayout:  "layout",
		ErrorHandler: console.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.SetupConsoleRoutes(app, hdl, store, cfg.SessionIdle)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Errorw("shutdown", "err", err)
		}
	}()

	log.Infof("console listening on :%s (backend %s)", cfg.WebPort, api.BaseURL())
	if err := app.Listen(":" + cfg.WebPort); err != nil {
		log.Fatal(err)
	}
}
