package logic

import (
	"context"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type teamStatsService struct {
	src SnapshotSource
}

func NewTeamStatsService(src SnapshotSource) TeamStatsService {
	return &teamStatsService{src: src}
}

// Summaries returns the precomputed dense summary table, optionally
// narrowed to one team and/or one gamemode. Row order is preserved from
// the build (mode rank, map rank, team name).
func (s *teamStatsService) Summaries(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	out := make([]models.TeamSummary, 0, len(snap.TeamSummaries))
	for _, row := range snap.TeamSummaries {
		if team != "" && row.Team != team {
			continue
		}
		if mode != "" && row.Gamemode != mode {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *teamStatsService) MapRecord(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) (string, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return "", ErrNoSnapshot
	}
	return MapRecord(snap.Observations, team, opponent, mode, mapName), nil
}

func (s *teamStatsService) SeriesRecord(ctx context.Context, team, opponent string) (string, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return "", ErrNoSnapshot
	}
	return SeriesRecord(snap.SeriesSummaries, team, opponent), nil
}
