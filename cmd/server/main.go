// Package main is the entry point for the travel deal recommendation service.
//
//	@title			Travel Deal Recommendation API
//	@version		1.0.0
//	@description	Ranks candidate travel destinations by exchange rate, fare cost, and carbon efficiency, with cached forex and fare data behind a single-flight fetch layer.
//
//	@host			localhost:8080
//	@BasePath		/api/v1
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apihttp "github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/http"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/http/middleware"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/provider/openexchange"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/provider/skyfare"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/cache"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/catalog"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/config"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/fetch"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/logger"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/timeutil"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/obs"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Configuration loaded")

	clock := timeutil.NewRealClock()

	store, cleanup, err := buildStore(cfg, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache store")
	}
	defer cleanup()

	metrics := obs.NewMetrics()
	orch := fetch.NewOrchestrator(store, metrics, log)

	forex := openexchange.NewAdapter(filepath.Join(cfg.Providers.DataDir, "open_exchange_rates.json"))
	fares := skyfare.NewAdapter(filepath.Join(cfg.Providers.DataDir, "skyfare_fares.json"))

	scorer := usecase.NewScorer(usecase.ScoringConfig{
		Weights: usecase.ScoreWeights{
			Forex:  cfg.Scoring.ForexWeight,
			Cost:   cfg.Scoring.CostWeight,
			Carbon: cfg.Scoring.CarbonWeight,
		},
		RateBaseline:    cfg.Scoring.RateBaseline,
		TrendInfluence:  cfg.Scoring.TrendInfluence,
		RefPricePerHour: cfg.Scoring.RefPricePerHour,
		RefCarbonKg:     cfg.Scoring.RefCarbonKg,
	})

	recommendUC := usecase.NewRecommendUseCase(catalog.Default(), orch, forex, fares, scorer, clock, log, &usecase.Config{
		GlobalTimeout:     cfg.Timeouts.GlobalRecommend,
		ProviderTimeout:   cfg.Timeouts.PerProvider,
		MaxResults:        cfg.Recommend.MaxResults,
		ForexTTL:          cfg.Cache.ForexTTL,
		FlightTTL:         cfg.Cache.FlightTTL,
		RecommendationTTL: cfg.Cache.RecommendationTTL,
	})

	handler := apihttp.NewRecommendationHandler(recommendUC)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	apihttp.RegisterRoutes(e, handler)

	// Metrics are served off the service's own registry, not the global one.
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildStore creates the cache store selected by configuration. The returned
// cleanup releases backend resources and is safe to call once at shutdown.
func buildStore(cfg *config.Config, clock timeutil.Clock, log *logger.Logger) (cache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		store := cache.NewMemoryStore(clock, cfg.Cache.SweepInterval)
		return store, store.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}

		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("Error closing redis client")
			}
		}
		return cache.NewRedisStore(client, clock, log), cleanup, nil

	case config.BackendMongo:
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.Cache.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect: %w", err)
		}

		coll := client.Database(cfg.Cache.MongoDatabase).Collection(cfg.Cache.MongoCollection)
		store := cache.NewMongoStore(coll, clock)

		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Warn().Err(err).Msg("Error disconnecting mongo client")
			}
		}
		return store, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
