package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/config"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/dataset"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/handlers"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/logic"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Postgres
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to create Postgres pool", "error", err)
	}
	defer pg.Close()

	// ClickHouse
	chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
	if err != nil {
		sugar.Fatalw("Failed to parse ClickHouse URL", "error", err)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		sugar.Fatalw("Failed to connect to ClickHouse", "error", err)
	}
	defer ch.Close()

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Failed to parse Redis URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	// Stores and derived-view refresher
	refresher := dataset.NewRefresher(dataset.Config{
		Observations: store.NewObservationStore(ch, logger),
		Teams:        store.NewReferenceStore(pg),
		Lines:        store.NewLineStore(rdb),
		Interval:     cfg.RefreshInterval,
		Logger:       logger,
	})

	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := refresher.Refresh(initCtx); err != nil {
		// Serve anyway; readiness stays false until a refresh succeeds.
		sugar.Errorw("Initial dataset refresh failed", "error", err)
	}
	cancel()

	refresher.Start(ctx)
	defer refresher.Stop()

	h := handlers.New(handlers.Config{
		Refresher:  refresher,
		Postgres:   pg,
		ClickHouse: ch,
		Redis:      rdb,
		Logger:     logger,
		TeamStats:  logic.NewTeamStatsService(refresher),
		Series:     logic.NewSeriesService(refresher),
		Streaks:    logic.NewStreakService(refresher),
		Props:      logic.NewPropsService(refresher),
		Scoreboard: logic.NewScoreboardService(refresher),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(h, cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		sugar.Infow("Server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}
