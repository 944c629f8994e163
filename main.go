package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"QR-Code-Tracker/config"
	_ "QR-Code-Tracker/docs"
	"QR-Code-Tracker/handlers"
	"QR-Code-Tracker/pkg/logging"
	"QR-Code-Tracker/repository"
	"QR-Code-Tracker/router"
	"QR-Code-Tracker/seeder"
	_ "time/tzdata"
)

const shutdownTimeout = 10 * time.Second

// @title QR Code Tracker API
// @version 1.0
// @description Generate QR codes with optional logos, track their scans and report per-user totals.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
//
// @tag.name Auth
// @tag.description Registration, login and token refresh
//
// @tag.name QR Codes
// @tag.description Generating and managing your own QR codes
//
// @tag.name Analytics
// @tag.description Scan recording and reporting
//
// @tag.name Files
// @tag.description Uploaded logos
func main() {
	bootLog := logging.New(false)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		bootLog.Warn(context.Background(), ".env file not found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog.Error(context.Background(), "invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log logging.Logger) error {
	maker, err := config.NewTokenMaker(cfg)
	if err != nil {
		return err
	}
	if cfg.SecretGenerated {
		log.Warn(ctx, "TOKEN_SECRET not set, using a random key; tokens will not survive a restart")
	}

	client, err := config.MongoConnect(ctx, cfg.MongoURI, log)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		config.DisconnectDB(disconnectCtx, client, log)
	}()

	db := client.Database(cfg.MongoDB)
	if err := config.InitDatabase(ctx, db); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	if cfg.SeedDemoUser {
		if _, err := seeder.SeedDemoUser(ctx, userRepo, log); err != nil {
			return err
		}
	}

	app := fiber.New(fiber.Config{
		AppName:               "QR Code Tracker",
		DisableStartupMessage: !cfg.Debug,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	config.SetupCORS(app, cfg.CORSOrigins)

	router.SetupRoutes(app, router.Dependencies{
		Users:   userRepo,
		QRCodes: repository.NewQRCodeRepository(db),
		Scans:   repository.NewScanRepository(db),
		Logos:   repository.NewLogoRepository(db),
		Maker:   maker,
		Logger:  log,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "server starting",
			"address", cfg.Address(),
			"docs", "/docs/index.html",
			"token_format", cfg.TokenFormat,
			"cors_origins", cfg.CORSOrigins,
		)
		serveErr <- app.Listen(cfg.Address())
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}
