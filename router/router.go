package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"QR-Code-Tracker/config/middleware"
	_ "QR-Code-Tracker/docs"
	"QR-Code-Tracker/handlers"
	"QR-Code-Tracker/pkg/logging"
	"QR-Code-Tracker/pkg/token"
	"QR-Code-Tracker/repository"
)

type Dependencies struct {
	Users   repository.UserRepository
	QRCodes repository.QRCodeRepository
	Scans   repository.ScanRepository
	Logos   repository.LogoRepository
	Maker   token.Maker
	Logger  logging.Logger
}

// New builds a bare app with the error handler installed and every route
// registered. main builds its own app so middleware can go in first.
func New(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(deps.Logger),
	})
	SetupRoutes(app, deps)
	return app
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Maker)
	qrCodeHandler := handlers.NewQRCodeHandler(deps.QRCodes, deps.Logos, deps.Logger)
	analyticsHandler := handlers.NewAnalyticsHandler(deps.Scans)
	fileHandler := handlers.NewFileHandler(deps.Logos)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "QR Code Tracker API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	qrCodeGroup := app.Group("/qrcodes", middleware.AuthMiddleware(deps.Maker))
	qrCodeGroup.Post("/generate", qrCodeHandler.GenerateQRCode)
	qrCodeGroup.Get("/my_qrcodes", qrCodeHandler.GetMyQRCodes)
	qrCodeGroup.Delete("/qrcodes/:id", qrCodeHandler.DeleteQRCode)

	app.Post("/scans/:qr_code_id", analyticsHandler.RecordScan)

	analyticsGroup := app.Group("/analytics")
	analyticsGroup.Get("/user/:user_id", analyticsHandler.GetUserAnalytics)
	analyticsGroup.Get("/:qr_code_id", analyticsHandler.GetScansByQRCode)

	app.Get("/files/:id", fileHandler.GetLogo)
}
