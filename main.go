package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"

	"inventory/internal/config"
	"inventory/internal/database"
	"inventory/internal/server"
	"inventory/internal/services"
	"inventory/pkg/logger"
	"inventory/pkg/mailer"
)

func main() {
	ctx := context.Background()

	// --- Configuration ---
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()
	v := viper.New()
	v.AutomaticEnv()

	cfg, err := config.Load(v)
	if err != nil {
		logger.New(logger.Options{ServiceName: "inventory"}).Error(ctx, "invalid configuration", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "inventory",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	// --- Database ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Error(ctx, "failed to migrate database", err)
		os.Exit(1)
	}
	log.Info(ctx, "database schema up to date")

	// --- Mail transport ---
	mailClient, err := mailer.NewClient(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
	})
	if err != nil {
		log.Error(ctx, "failed to initialize mail client", err)
		os.Exit(1)
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := server.New(server.Deps{
		DB:   db,
		Mail: mailClient,
		Notification: services.NotificationConfig{
			From:         mailClient.From(),
			BusinessName: cfg.Mail.BusinessName,
			Signature:    cfg.Mail.Signature,
		},
		CORSOrigin: cfg.CORSOrigin,
		Logger:     log,
		Registry:   registry,
		AccessLog:  true,
	})

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info(ctx, "starting server on "+cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Error(ctx, "server failed to start", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info(ctx, "shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error(ctx, "error during fiber shutdown", err)
	}
	log.Info(ctx, "server gracefully stopped")
}
