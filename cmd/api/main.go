package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"signupapi/docs"
	"signupapi/internal/config"
	"signupapi/internal/database"
	"signupapi/internal/database/migration"
	handlers "signupapi/internal/http/handler"
	"signupapi/internal/http/middleware"
	"signupapi/internal/otel"
	"signupapi/internal/repository/postgres"
	"signupapi/internal/service"
	"signupapi/internal/storage"
	"signupapi/internal/worker"
)

// @title Signup API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Bootstrap schema on first start
	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories and services
	signupRepo := postgres.NewSignupPostgres(db)
	signupSvc := service.NewSignupService(signupRepo)
	reportSvc := service.NewReportService(signupRepo, objStore, cfg.Report.Prefix)

	// Metrics registry shared by HTTP middleware and the worker dispatcher
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	// Worker task dispatcher with the application's task handlers
	dispatcher, err := worker.NewDispatcher(reg)
	if err != nil {
		log.Fatalf("failed to register worker metrics: %v", err)
	}
	dispatcher.Register(worker.TaskWelcomeEmail, worker.WelcomeEmail())
	dispatcher.Register(worker.TaskGenerateReport, worker.GenerateReport(reportSvc))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Request counter for the /metrics endpoint
	app.Use(promMiddleware.Handler())
	// Trace spans for incoming requests
	app.Use(otelfiber.Middleware())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		Store:      objStore,
		Signups:    signupSvc,
		Dispatcher: dispatcher,
		ScheduledTasks: map[string]string{
			cfg.Report.DefaultTask: worker.TaskGenerateReport,
		},
		DefaultScheduledTask: cfg.Report.DefaultTask,
		Metrics:              reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
