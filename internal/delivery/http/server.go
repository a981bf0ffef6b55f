package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/nuibaden/tourism-service/internal/config"
	"github.com/nuibaden/tourism-service/internal/delivery/http/handler"
	"github.com/nuibaden/tourism-service/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server for the tourism service.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	contentHandler    *handler.ContentHandler
	mapSessionHandler *handler.MapSessionHandler
	poiHandler        *handler.POIHandler
	searchHandler     *handler.SearchHandler
	statsHandler      *handler.StatsHandler
}

// NewServer wires the handlers into the Fiber app.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	contentHandler *handler.ContentHandler,
	mapSessionHandler *handler.MapSessionHandler,
	poiHandler *handler.POIHandler,
	searchHandler *handler.SearchHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Nui Ba Den Tourism Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		contentHandler:    contentHandler,
		mapSessionHandler: mapSessionHandler,
		poiHandler:        poiHandler,
		searchHandler:     searchHandler,
		statsHandler:      statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check kept in the shape the original backend exposed
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is running")
	})

	// Collection API: bare JSON arrays consumed by the browser client
	s.app.Get("/api/info", s.contentHandler.GetInfo)
	s.app.Get("/api/poi", s.contentHandler.GetPOI)
	s.app.Get("/api/map", s.contentHandler.GetPOI) // legacy alias
	s.app.Get("/api/activities", s.contentHandler.GetActivities)
	s.app.Get("/api/services", s.contentHandler.GetServices)
	s.app.Get("/api/events", s.contentHandler.GetEvents)
	s.app.Get("/api/tours", s.contentHandler.GetTours)
	s.app.Get("/api/restaurants", s.contentHandler.GetRestaurants)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Search and metadata routes
	api.Get("/search", s.searchHandler.Search)
	api.Get("/poi/categories", s.poiHandler.GetCategories)
	api.Get("/stats", s.statsHandler.GetStatistics)

	// Map session routes: one route per presentation event
	sessions := api.Group("/map/sessions")
	sessions.Post("/", s.mapSessionHandler.CreateSession)
	sessions.Get("/:id", s.mapSessionHandler.GetSession)
	sessions.Delete("/:id", s.mapSessionHandler.CloseSession)
	sessions.Post("/:id/select", s.mapSessionHandler.Select)
	sessions.Post("/:id/dismiss", s.mapSessionHandler.Dismiss)
	sessions.Post("/:id/category", s.mapSessionHandler.SetCategory)
	sessions.Get("/:id/search", s.mapSessionHandler.Search)
	sessions.Post("/:id/locate", s.mapSessionHandler.Locate)
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
