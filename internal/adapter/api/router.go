package api

import (
	"song-suggester/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(app *fiber.App, cfg *config.Config, handler *SuggestionHandler) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + APIKeyHeader,
	}))
	app.Use(metricsMiddleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": cfg.Version,
			"env":     cfg.Env,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Endpoints
	if cfg.AuthDisabled {
		app.Post("/filter-songs", handler.HandleFilterSongs)
	} else {
		app.Post("/filter-songs", APIKeyAuth(cfg.ClientAPIKey), handler.HandleFilterSongs)
	}
	app.Post("/song", handler.HandleSongStatus)
}
