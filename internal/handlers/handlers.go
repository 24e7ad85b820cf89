package handlers

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/logic"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// DatasetRefresher is the dataset lifecycle surface exposed over HTTP:
// on-demand recompute plus snapshot metadata for readiness checks.
type DatasetRefresher interface {
	Refresh(ctx context.Context) error
	Snapshot() *models.Snapshot
}

type Config struct {
	Refresher  DatasetRefresher
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	TeamStats  logic.TeamStatsService
	Series     logic.SeriesService
	Streaks    logic.StreakService
	Props      logic.PropsService
	Scoreboard logic.ScoreboardService
}

type Handler struct {
	refresher  DatasetRefresher
	pg         *pgxpool.Pool
	ch         driver.Conn
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	teamStats  logic.TeamStatsService
	series     logic.SeriesService
	streaks    logic.StreakService
	props      logic.PropsService
	scoreboard logic.ScoreboardService
}

func New(cfg Config) *Handler {
	return &Handler{
		refresher:  cfg.Refresher,
		pg:         cfg.Postgres,
		ch:         cfg.ClickHouse,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		teamStats:  cfg.TeamStats,
		series:     cfg.Series,
		streaks:    cfg.Streaks,
		props:      cfg.Props,
		scoreboard: cfg.Scoreboard,
	}
}
