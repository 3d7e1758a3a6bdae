package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docdesk/docs"
	"docdesk/internal/compress"
	"docdesk/internal/config"
	"docdesk/internal/database"
	"docdesk/internal/database/migration"
	"docdesk/internal/dispatch"
	handlers "docdesk/internal/http/handler"
	"docdesk/internal/http/middleware"
	"docdesk/internal/inspect"
	"docdesk/internal/logger"
	"docdesk/internal/metrics"
	"docdesk/internal/otel"
	"docdesk/internal/repository/sqlstore"
	"docdesk/internal/service"
	"docdesk/internal/storage"
)

// @title Document Desk API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	lg, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, lg)
	if err != nil {
		lg.Fatal("tracing_init_failed", zap.Error(err))
	}

	// Catalog store: SQLite by default, PostgreSQL when DB_DRIVER=postgres
	db, err := database.Open(cfg.Database)
	if err != nil {
		lg.Fatal("database_open_failed", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Driver, lg); err != nil {
		lg.Fatal("migration_failed", zap.Error(err))
	}

	// Archiving stays disabled unless an object store is configured
	var archive storage.Storage
	if cfg.MinIO.Endpoint != "" {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			lg.Fatal("object_storage_init_failed", zap.Error(err))
		}
	}

	catalogRepo := sqlstore.NewCatalogStore(db, sqlstore.DialectFor(cfg.Database.Driver))
	catalogSvc := service.NewCatalogService(catalogRepo, archive, cfg.MinIO.URLExpiry)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mc, err := metrics.New(reg)
	if err != nil {
		lg.Fatal("metrics_init_failed", zap.Error(err))
	}
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		lg.Fatal("metrics_init_failed", zap.Error(err))
	}

	gateway := dispatch.NewGateway(cfg.Dispatch, lg, mc)
	compressor := compress.NewOrchestrator(
		compress.NewGhostscript(cfg.Compress.GhostscriptPath, cfg.Dispatch.AppDir),
		dispatch.NewClient(gateway),
		lg, mc,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(lg))
	app.Use(promMw.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		Catalog:    catalogSvc,
		Gateway:    gateway,
		Compressor: compressor,
		Inspector:  inspect.New(),
		RateLimit:  middleware.NewRateLimiter(cfg.Dispatch.RateRPS, cfg.Dispatch.RateBurst, mc).Handler(),
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

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

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			lg.Error("http_shutdown_failed", zap.Error(err))
		}
		if err := shutdownTracing(sctx); err != nil {
			lg.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	lg.Info("server_starting", zap.String("addr", addr), zap.String("db_driver", cfg.Database.Driver))

	if err := app.Listen(addr); err != nil {
		lg.Fatal("server_failed", zap.Error(err))
	}
}
