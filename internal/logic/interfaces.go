package logic

import (
	"context"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// SnapshotSource provides the current immutable dataset snapshot.
// It returns nil until the first successful refresh has published one.
type SnapshotSource interface {
	Snapshot() *models.Snapshot
}

// TeamStatsService exposes the team win/loss summary table and
// head-to-head records.
type TeamStatsService interface {
	Summaries(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error)
	MapRecord(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) (string, error)
	SeriesRecord(ctx context.Context, team, opponent string) (string, error)
}

// SeriesService exposes the per-match map tallies.
type SeriesService interface {
	Summaries(ctx context.Context, team string) ([]models.SeriesSummary, error)
}

// StreakService exposes current-run computations at map and prop level.
type StreakService interface {
	TeamStreak(ctx context.Context, team string, mode models.Gamemode, mapName string) (int, error)
	PropStreak(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropStreakReport, error)
}

// PropsService exposes over/under reports against betting lines.
type PropsService interface {
	Report(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropReport, error)
	Card(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (*models.PropCard, error)
	Lines(ctx context.Context) ([]models.PropLine, error)
}

// ScoreboardService assembles two-team side-by-side box score tables.
type ScoreboardService interface {
	Build(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) ([]models.ScoreboardRow, error)
}
