package logic

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// recentKillsLimit caps the history shown on a prop card.
const recentKillsLimit = 10

type propsService struct {
	src SnapshotSource
}

func NewPropsService(src SnapshotSource) PropsService {
	return &propsService{src: src}
}

func (s *propsService) Report(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (models.PropReport, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return models.PropReport{}, ErrNoSnapshot
	}
	return PlayerProp(snap.Observations, player, mode, mapName, line), nil
}

// Card assembles the full prop view for one player and line: the
// over/under report, the current streak and recent kill history, computed
// over the same snapshot so the sections cannot disagree.
func (s *propsService) Card(ctx context.Context, player string, mode models.Gamemode, mapName string, line float64) (*models.PropCard, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return nil, ErrNoSnapshot
	}

	card := &models.PropCard{Player: player, Line: line}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		card.Report = PlayerProp(snap.Observations, player, mode, mapName, line)
		return nil
	})
	g.Go(func() error {
		card.Streak = PropStreak(snap.Observations, player, mode, mapName, line)
		return nil
	})
	g.Go(func() error {
		card.RecentKills = RecentKills(snap.Observations, player, mode, mapName, recentKillsLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *propsService) Lines(ctx context.Context) ([]models.PropLine, error) {
	snap := s.src.Snapshot()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap.Lines, nil
}
