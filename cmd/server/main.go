package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/thaisassuncao/community-app/internal/adapter/httpserver"
	"github.com/thaisassuncao/community-app/internal/adapter/postgres"
	"github.com/thaisassuncao/community-app/internal/analytics"
	"github.com/thaisassuncao/community-app/internal/app"
	"github.com/thaisassuncao/community-app/internal/cache"
	"github.com/thaisassuncao/community-app/internal/config"
	"github.com/thaisassuncao/community-app/internal/domain"
	"github.com/thaisassuncao/community-app/internal/logging"
	"github.com/thaisassuncao/community-app/internal/reaction"
	"github.com/thaisassuncao/community-app/internal/sentiment"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(cfg *config.Config) *goredis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	healthChecks := []httpserver.HealthCheck{
		{Name: "postgres", Check: pool.Ping},
	}

	// Redis is optional; without it the analytics endpoints recompute on
	// every request.
	var analyticsCache domain.AnalyticsCache
	if cfg.RedisURL != "" {
		redisClient := setupRedis(cfg)
		defer func() { _ = redisClient.Close() }()
		analyticsCache = cache.NewAnalytics(redisClient, cfg.AnalyticsCacheTTL)
		healthChecks = append(healthChecks, httpserver.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}

	userRepo := postgres.NewUserRepo(pool)
	communityRepo := postgres.NewCommunityRepo(pool)
	messageRepo := postgres.NewMessageRepo(pool)
	reactionRepo := postgres.NewReactionRepo(pool)

	analyzer := sentiment.NewAnalyzer()
	guard := reaction.NewGuard(reactionRepo, clock)
	scorer := analytics.NewScorer(messageRepo, communityRepo)
	detector := analytics.NewDetector(messageRepo)

	appSvc := app.NewService(userRepo, communityRepo, messageRepo, analyzer, guard, scorer, detector, analyticsCache, clock)

	srv := httpserver.NewServer(cfg, appSvc, healthChecks)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
