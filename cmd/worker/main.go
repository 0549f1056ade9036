package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smart-jordan/internal/config"
	"github.com/smart-jordan/internal/pkg/logger"
	"github.com/smart-jordan/internal/repository/cache"
	redisRepo "github.com/smart-jordan/internal/repository/redis"
	"github.com/smart-jordan/internal/usecase"
	"github.com/smart-jordan/internal/worker"
	"github.com/smart-jordan/internal/worker/sensor"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Sensor Simulation Worker")
	log.Info("Configuration loaded",
		zap.Duration("interval", cfg.Sensor.Interval),
		zap.Bool("stream_enabled", cfg.Sensor.StreamEnabled),
		zap.Int64("stream_max_len", cfg.Sensor.StreamMaxLen))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Sensor.StreamMaxLen, log)

	// 5. Initialize use cases
	sensorUC := usecase.NewSensorUseCase(
		usecase.NewRandomSampler(),
		cacheRepo,
		streamRepo,
		cfg.Cache.SensorCacheTTL,
		cfg.Sensor.StreamEnabled,
		log,
	)

	// 6. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(cfg.Worker.ShutdownTimeout, log)
	workerManager.Register(sensor.NewSimulationWorker(sensorUC, cfg.Sensor.Interval, log))

	// 7. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}
