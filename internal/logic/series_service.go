package logic

import (
	"context"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type seriesService struct {
	src SnapshotSource
}

func NewSeriesService(src SnapshotSource) SeriesService {
	return &seriesService{src: src}
}

// Summaries returns the per-match map tallies, most recent series first,
// optionally narrowed to one team's rows.
func (s *seriesService) Summaries(ctx context.Context, team string) ([]models.SeriesSummary, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	if team == "" {
		return snap.SeriesSummaries, nil
	}
	var out []models.SeriesSummary
	for _, row := range snap.SeriesSummaries {
		if row.Team == team {
			out = append(out, row)
		}
	}
	return out, nil
}
