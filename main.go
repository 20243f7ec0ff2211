// main.go
package main

import (
	"context"
	"log"
	"time"

	"inventory-backend/cmd"
	"inventory-backend/internal/data/repository"
	"inventory-backend/internal/wire"
	"inventory-backend/pkg/database"
	"inventory-backend/pkg/mailer"
	"inventory-backend/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Run schema migrations before opening the pool
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.RunMigrations(migrateCtx, config.Database); err != nil {
		cancel()
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	cancel()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Pick the mail transport: SMTP when configured, dev log transport
	// otherwise
	var mail mailer.Mailer
	if config.Email.Host != "" {
		resetValidity := time.Duration(config.Reset.ExpiryMinutes) * time.Minute
		mail = mailer.NewSMTPMailer(config.Email, resetValidity)
	} else {
		logger.Warn("SMTP not configured, using dev log mailer")
		mail = mailer.NewLogMailer(logger)
	}

	// Sweep expired session rows in the background
	go sessionJanitor(repos.Session, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, mail, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func sessionJanitor(sessions repository.SessionRepository, logger *zap.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := sessions.CleanExpiredSessions(ctx); err != nil {
			logger.Warn("Session cleanup failed", zap.Error(err))
		}
		cancel()
	}
}
