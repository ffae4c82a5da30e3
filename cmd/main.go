package main

import (
	"strconv"
	"time"

	"tracking-service/internal/handler"
	"tracking-service/internal/middleware"
	"tracking-service/internal/repository"
	"tracking-service/pkg/config"
	"tracking-service/pkg/database"
	"tracking-service/pkg/jwtutil"
	"tracking-service/pkg/logger"
	"tracking-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting tracking service...", zap.String("environment", cfg.Server.Env))

	// Initialize JWT utilities
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host),
		zap.String("db_name", cfg.DB.DBName))

	// Wire the query layer
	repo, err := repository.New(database.GetDB())
	if err != nil {
		log.Fatal("Failed to initialize repository", zap.Error(err))
	}
	handler.Init(repo)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Process request
			err := next(c)

			// Calculate duration
			duration := time.Since(start).Seconds()
			status := c.Response().Status

			// Log request details
			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()

			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Observe(duration)

			return err
		}
	})

	// Public routes
	e.GET("/", handler.Health)
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/auth/register", handler.Register)
	e.POST("/api/auth/login", handler.Login)

	// Tracking routes: authenticated, and the :userId route param must
	// match the token identity
	api := e.Group("/api/:userId")
	api.Use(middleware.AuthMiddleware)
	api.Use(middleware.RequireOwnData)

	jobs := api.Group("/jobs")
	jobs.POST("", handler.CreateJob)
	jobs.GET("", handler.GetAnyJobs)
	jobs.GET("/type/:machType", handler.GetJobs)
	jobs.GET("/byDate/:machType", handler.GetJobsByDate)
	jobs.GET("/all/:machType", handler.GetAllJobsByType)
	jobs.GET("/part/:partNumber", handler.GetJobsByPart)
	jobs.GET("/:jobNum", handler.GetJob)
	jobs.PUT("/remaining/:jobNum", handler.UpdateJobRemaining)
	jobs.PUT("/active/:jobNum", handler.UpdateActiveJob)
	jobs.PUT("/:jobNum", handler.UpdateJob)
	jobs.DELETE("/:jobNum", handler.DeleteJob)

	parts := api.Group("/parts")
	parts.POST("", handler.CreatePart)
	parts.GET("", handler.GetAnyParts)
	parts.GET("/search/:fragment", handler.SearchParts)
	parts.GET("/active/:machType", handler.GetActiveParts)
	parts.GET("/all/:machType", handler.GetAllParts)
	parts.GET("/job/:jobNum", handler.GetPartByJob)
	parts.GET("/:partNumber", handler.GetPart)
	parts.PUT("/:partNumber", handler.UpdatePart)
	parts.DELETE("/:partNumber", handler.DeletePart)

	machines := api.Group("/machines")
	machines.POST("", handler.CreateMachine)
	machines.GET("", handler.GetAllMachines)
	machines.GET("/type/:machType", handler.GetMachinesByType)
	machines.GET("/byJob", handler.GetMachinesByJob)
	machines.GET("/:machine", handler.GetMachine)
	machines.PUT("/:machine", handler.UpdateMachine)
	machines.DELETE("/:machine", handler.DeleteMachine)

	operations := api.Group("/operations")
	operations.POST("", handler.CreateOperation)
	operations.GET("/job/:jobNum", handler.GetOperationsByJob)
	operations.GET("/job/:jobNum/machine/:machine", handler.GetOperationsByMachine)
	operations.GET("/job/:jobNum/op/:opNum", handler.GetOperation)
	operations.DELETE("/job/:jobNum/op/:opNum", handler.DeleteOperation)

	production := api.Group("/production")
	production.POST("", handler.CreateProduction)
	production.GET("", handler.GetAnyProduction)
	production.GET("/type/:machType", handler.GetProductionSet)
	production.GET("/job/:jobNum", handler.GetProductionSetByJob)
	production.GET("/job/:jobNum/op/:opNum", handler.GetProductionSetByOp)
	production.GET("/job/:jobNum/op/:opNum/machine/:machine", handler.GetProductionSetByJobOpAndMachine)
	production.GET("/date/:date", handler.GetProductionSetByDate)
	production.GET("/shifts", handler.GetProductionShifts)
	production.GET("/found", handler.GetProductionFound)
	production.GET("/:id", handler.GetProduction)
	production.PUT("/:id", handler.UpdateProduction)
	production.DELETE("/:id", handler.DeleteProduction)

	hourly := api.Group("/hourly")
	hourly.POST("", handler.CreateHourly)
	hourly.GET("/any", handler.GetAnyHourly)
	hourly.GET("/date/:date/machine/:machine", handler.GetHourlySetByDateAndMachine)
	hourly.GET("/date/:date/machine/:machine/job/:jobNum/op/:opNum", handler.GetHourlySetByDateMachineJobAndOp)
	hourly.GET("/:id", handler.GetHourly)
	hourly.PUT("/:id", handler.UpdateHourly)
	hourly.DELETE("/:id", handler.DeleteHourly)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
