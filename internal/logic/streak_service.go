package logic

import (
	"context"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type streakService struct {
	src SnapshotSource
}

func NewStreakService(src SnapshotSource) StreakService {
	return &streakService{src: src}
}

func (s *streakService) TeamStreak(ctx context.Context, team string, mode models.Gamemode, mapName string) (int, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return 0, ErrNoSnapshot
	}
	return MapStreak(snap.Observations, team, mode, mapName), nil
}

func (s *streakService) PropStreak(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropStreakReport, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return models.PropStreakReport{}, ErrNoSnapshot
	}
	return PropStreak(snap.Observations, player, mode, mapName, line), nil
}
