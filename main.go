package main

import (
	"context"
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	// a missing signing secret is fatal here, never a per-request error
	if err := config.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema ready")
	}

	infra := wire.Infra{DB: db}

	if config.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache and rate limit", zap.Error(err))
		} else {
			defer rdb.Close()
			infra.Redis = rdb
			logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
		}
	}

	if config.RabbitMQ.Enabled {
		publisher, err := broker.NewRabbitPublisher(config.RabbitMQ, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, events will be dropped", zap.Error(err))
		} else {
			defer publisher.Close()
			infra.Events = publisher
			logger.Info("RabbitMQ connected", zap.String("exchange", config.RabbitMQ.Exchange))
		}
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, infra, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
