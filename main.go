package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/DrummDaddy/Event_service/internal/config"
	"github.com/DrummDaddy/Event_service/internal/database"
	"github.com/DrummDaddy/Event_service/internal/logger"
	"github.com/DrummDaddy/Event_service/internal/models"
	"github.com/DrummDaddy/Event_service/internal/repositories"
	"github.com/DrummDaddy/Event_service/internal/services"
)

// Connects to MongoDB, creates the indexes every registered schema needs and
// checks the optional event cache. Run once per deploy before the web app.
func main() {
	if err := run(); err != nil {
		slog.Error("cannot start", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	manager, err := database.Default()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer manager.Disconnect(context.Background())

	db, err := database.Connect(ctx)
	if err != nil {
		log.Error("database unavailable", "error", err)
		return err
	}

	if err := repositories.EnsureIndexes(ctx, db, cfg.Policy); err != nil {
		log.Error("index setup failed", "error", err)
		return err
	}
	for _, name := range models.SchemaNames() {
		schema, _ := models.Lookup(name)
		log.Info("schema ready",
			"schema", schema.Name,
			"collection", schema.Collection,
			"indexes", len(schema.IndexModels(cfg.Policy)))
	}

	var cache services.EventCache
	if cfg.Redis.Addr != "" {
		rc := services.NewRedisCache(cfg.Redis)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn("event cache unavailable, reads go to mongodb", "addr", cfg.Redis.Addr, "error", err)
		} else {
			cache = rc
		}
	}

	eventRepo := repositories.NewEventRepository(db)
	events := services.NewEventService(eventRepo, cache, log)
	list, err := events.List(ctx, 0)
	if err != nil {
		log.Error("cannot list events", "error", err)
		return err
	}
	log.Info("ready",
		"events", len(list),
		"unique_booking_per_email", cfg.Policy.UniqueBookingPerEmail,
		"cache", cache != nil)
	return nil
}
