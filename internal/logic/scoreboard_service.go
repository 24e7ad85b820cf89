package logic

import (
	"context"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type scoreboardService struct {
	src SnapshotSource
}

func NewScoreboardService(src SnapshotSource) ScoreboardService {
	return &scoreboardService{src: src}
}

func (s *scoreboardService) Build(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) ([]models.ScoreboardRow, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return BuildScoreboard(snap.Observations, team, opponent, mode, mapName)
}
