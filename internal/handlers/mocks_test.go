package handlers

import (
	"context"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type MockRefresher struct {
	RefreshFunc  func(ctx context.Context) error
	SnapshotFunc func() *models.Snapshot
}

func (m *MockRefresher) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

func (m *MockRefresher) Snapshot() *models.Snapshot {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc()
	}
	return nil
}

type MockTeamStatsService struct {
	SummariesFunc    func(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error)
	MapRecordFunc    func(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) (string, error)
	SeriesRecordFunc func(ctx context.Context, team, opponent string) (string, error)
}

func (m *MockTeamStatsService) Summaries(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error) {
	return m.SummariesFunc(ctx, team, mode)
}

func (m *MockTeamStatsService) MapRecord(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) (string, error) {
	return m.MapRecordFunc(ctx, team, opponent, mode, mapName)
}

func (m *MockTeamStatsService) SeriesRecord(ctx context.Context, team, opponent string) (string, error) {
	return m.SeriesRecordFunc(ctx, team, opponent)
}

type MockSeriesService struct {
	SummariesFunc func(ctx context.Context, team string) ([]models.SeriesSummary, error)
}

func (m *MockSeriesService) Summaries(ctx context.Context, team string) ([]models.SeriesSummary, error) {
	return m.SummariesFunc(ctx, team)
}

type MockStreakService struct {
	TeamStreakFunc func(ctx context.Context, team string, mode models.Gamemode, mapName string) (int, error)
	PropStreakFunc func(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropStreakReport, error)
}

func (m *MockStreakService) TeamStreak(ctx context.Context, team string, mode models.Gamemode, mapName string) (int, error) {
	return m.TeamStreakFunc(ctx, team, mode, mapName)
}

func (m *MockStreakService) PropStreak(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropStreakReport, error) {
	return m.PropStreakFunc(ctx, player, mode, mapName, line)
}

type MockPropsService struct {
	ReportFunc func(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropReport, error)
	CardFunc   func(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (*models.PropCard, error)
	LinesFunc  func(ctx context.Context) ([]models.PropLine, error)
}

func (m *MockPropsService) Report(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropReport, error) {
	return m.ReportFunc(ctx, player, mode, mapName, line)
}

func (m *MockPropsService) Card(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (*models.PropCard, error) {
	return m.CardFunc(ctx, player, mode, mapName, line)
}

func (m *MockPropsService) Lines(ctx context.Context) ([]models.PropLine, error) {
	return m.LinesFunc(ctx)
}

type MockScoreboardService struct {
	BuildFunc func(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) ([]models.ScoreboardRow, error)
}

func (m *MockScoreboardService) Build(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) ([]models.ScoreboardRow, error) {
	return m.BuildFunc(ctx, team, opponent, mode, mapName)
}
