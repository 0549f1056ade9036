package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/smart-jordan/internal/config"
	"github.com/smart-jordan/internal/delivery/http/handler"
	"github.com/smart-jordan/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор обработчиков, регистрируемых сервером
type Handlers struct {
	Destination *handler.DestinationHandler
	Scroll      *handler.ScrollHandler
	Sensor      *handler.SensorHandler
	Chat        *handler.ChatHandler
	Weather     *handler.WeatherHandler
	Map         *handler.MapHandler
	Status      *handler.StatusHandler
	Health      *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Smart Jordan API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(requestid.New())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Совместимые маршруты без обертки ответа
	legacy := s.app.Group("/api")
	legacy.Get("/", h.Status.Hello)
	legacy.Post("/status", h.Status.CreateRaw)
	legacy.Get("/status", h.Status.ListRaw)

	api := s.app.Group("/api/v1")

	api.Get("/health", h.Health.Health)

	// Destinations. /filters регистрируется до /:id
	api.Get("/destinations", h.Destination.List)
	api.Get("/destinations/filters", h.Destination.FilterOptions)
	api.Get("/destinations/:id", h.Destination.GetByID)

	// Scroll
	api.Post("/scroll/state", h.Scroll.State)

	// Sensors
	api.Get("/sensors/current", h.Sensor.Current)
	api.Get("/sensors/history", h.Sensor.History)

	// Chat
	chat := api.Group("/chat/sessions")
	chat.Post("/", h.Chat.Open)
	chat.Get("/:id", h.Chat.Transcript)
	chat.Post("/:id/messages", h.Chat.Submit)
	chat.Delete("/:id", h.Chat.Close)

	// Weather & map
	api.Get("/weather", h.Weather.Current)
	api.Get("/map/markers", h.Map.Markers)
	api.Get("/map/nearest", h.Map.Nearest)

	// Status
	api.Post("/status", h.Status.Create)
	api.Get("/status", h.Status.List)
}

// App - доступ к fiber.App (тесты)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			} else if code < fiber.StatusInternalServerError {
				errCode = "BAD_REQUEST"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
