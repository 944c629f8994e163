package config

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupCORS(app *fiber.App, allowedOrigins []string) {
	origins := strings.Join(allowedOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: !strings.Contains(origins, "*"),
		ExposeHeaders:    "Content-Length, Content-Type, X-QR-Code-ID",
	}))
}
