package main

// @title Smart Jordan API
// @version 1.0.0
// @description Бэкенд туристического гида по Иордании.
// @description
// @description Основные возможности:
// @description - Каталог направлений с фильтрами и поиском
// @description - Состояние навигации по странице (прогресс, активная секция)
// @description - Живые показания датчиков с публикацией в Redis Stream
// @description - Чат с гидом через внешний сервис ответов
// @description - Текущая погода и маркеры карты

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/smart-jordan/docs"
	"github.com/smart-jordan/internal/config"
	httpDelivery "github.com/smart-jordan/internal/delivery/http"
	"github.com/smart-jordan/internal/delivery/http/handler"
	"github.com/smart-jordan/internal/infrastructure/chat"
	"github.com/smart-jordan/internal/infrastructure/weather"
	"github.com/smart-jordan/internal/pkg/logger"
	"github.com/smart-jordan/internal/repository/cache"
	"github.com/smart-jordan/internal/repository/memory"
	"github.com/smart-jordan/internal/repository/postgres"
	redisRepo "github.com/smart-jordan/internal/repository/redis"
	"github.com/smart-jordan/internal/usecase"
	"github.com/smart-jordan/internal/worker"
	chatWorker "github.com/smart-jordan/internal/worker/chat"
	"github.com/smart-jordan/internal/worker/sensor"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Smart Jordan API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Duration("sensor_interval", cfg.Sensor.Interval),
		zap.Bool("in_process_sensor", cfg.Worker.InProcessSensor),
		zap.Duration("chat_session_ttl", cfg.Chat.SessionTTL),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	destinationRepo, err := memory.NewDestinationRepository(memory.Catalogue())
	if err != nil {
		log.Fatal("Invalid destination catalogue", zap.Error(err))
	}
	chatSessions := memory.NewChatSessionStore()
	statusRepo := postgres.NewStatusRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Sensor.StreamMaxLen, log)

	chatClient := chat.NewChatClient(&cfg.Chat, log)
	weatherClient := weather.NewWeatherClient(&cfg.Weather, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	destinationUC := usecase.NewDestinationUseCase(destinationRepo, log)
	sensorUC := usecase.NewSensorUseCase(
		usecase.NewRandomSampler(),
		cacheRepo,
		streamRepo,
		cfg.Cache.SensorCacheTTL,
		cfg.Sensor.StreamEnabled,
		log,
	)
	chatUC := usecase.NewChatUseCase(chatSessions, chatClient, cfg.Chat.Timeout, log)
	weatherUC := usecase.NewWeatherUseCase(weatherClient, cacheRepo, cfg.Cache.WeatherCacheTTL, log)
	mapUC := usecase.NewMapUseCase(destinationRepo, cfg.Map, log)
	statusUC := usecase.NewStatusUseCase(statusRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Destination: handler.NewDestinationHandler(destinationUC, log),
		Scroll:      handler.NewScrollHandler(log),
		Sensor:      handler.NewSensorHandler(sensorUC, log),
		Chat:        handler.NewChatHandler(chatUC, log),
		Weather:     handler.NewWeatherHandler(weatherUC, log),
		Map:         handler.NewMapHandler(mapUC, log),
		Status:      handler.NewStatusHandler(statusUC, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		}, log),
	})

	log.Info("HTTP server initialized")

	// 9. Background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	workerManager := worker.NewWorkerManager(cfg.Worker.ShutdownTimeout, log)
	workerManager.Register(chatWorker.NewSessionSweeper(chatUC, cfg.Chat.SessionTTL, cfg.Chat.SweepInterval, log))
	if cfg.Worker.InProcessSensor {
		workerManager.Register(sensor.NewSimulationWorker(sensorUC, cfg.Sensor.Interval, log))
	} else {
		log.Info("In-process sensor worker disabled, readings are served from cache")
	}
	if err := workerManager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop workers
	workerCancel()
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	// Close PostgreSQL connection
	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
