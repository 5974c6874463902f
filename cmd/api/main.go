package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Arman11r/Catalog-web/api/controllers"
	"github.com/Arman11r/Catalog-web/api/middleware"
	"github.com/Arman11r/Catalog-web/api/routes"
	"github.com/Arman11r/Catalog-web/internal/inquiries"
	"github.com/Arman11r/Catalog-web/internal/proposals"
	"github.com/Arman11r/Catalog-web/internal/quote/pdf"
	"github.com/Arman11r/Catalog-web/internal/storage"
	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/Arman11r/Catalog-web/pkg/db"
	"github.com/Arman11r/Catalog-web/pkg/logger"
	"github.com/Arman11r/Catalog-web/pkg/metrics"
	"github.com/Arman11r/Catalog-web/pkg/migrate"
	"github.com/Arman11r/Catalog-web/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var (
		store    storage.Store
		dbPinger controllers.Pinger
	)

	if cfg.FeatureFlags.UseMemoryStore {
		store = storage.NewMemoryStore(cfg.Password)
		logg.Info(context.Background(), "using in-memory store")
	} else {
		dbClient, err := db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()

		if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}

		store = storage.NewGormStore(dbClient.DB(), cfg.Password)
		dbPinger = dbClient
	}

	var (
		limiter     middleware.RateLimiterStore
		cachePinger controllers.Pinger
	)
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		limiter = redisClient
		cachePinger = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, contact rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	rasterizer := pdf.NewChromeRasterizer(cfg.PDF, logg)
	inquiryService := inquiries.NewService(store, logg)
	proposalService := proposals.NewService(store, rasterizer, logg, quoteMetrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Deps{
			Contact:  inquiryService,
			Proposal: proposalService,
			PDF:      proposalService,
			DB:       dbPinger,
			Cache:    cachePinger,
			Limiter:  limiter,
			Gatherer: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
