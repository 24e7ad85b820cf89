package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// ObservationStore loads the flat match-level dataset from ClickHouse.
// One row per player per map per match; the ingest pipeline owns writes,
// this store only reads full snapshots.
type ObservationStore struct {
	ch     driver.Conn
	logger *zap.SugaredLogger
}

func NewObservationStore(ch driver.Conn, logger *zap.Logger) *ObservationStore {
	return &ObservationStore{ch: ch, logger: logger.Sugar()}
}

// LoadAll reads every observation row, validating gamemode and map values
// against the fixed enumerations at the boundary so corrupt category data
// never reaches the aggregation layer.
func (s *ObservationStore) LoadAll(ctx context.Context) ([]models.Observation, error) {
	query := `
		SELECT
			match_id, match_date, map_num, gamemode, map_name,
			team, team_abbr, player, kills,
			team_score, opp_score, map_result, series_result
		FROM cdl_stats.map_results
		ORDER BY match_date, match_id, map_num, team, player
	`
	rows, err := s.ch.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("observation query failed: %w", err)
	}
	defer rows.Close()

	var obs []models.Observation
	for rows.Next() {
		var (
			o            models.Observation
			matchDate    time.Time
			mapNum       uint8
			gamemode     string
			kills        int32
			teamScore    int32
			oppScore     int32
			mapResult    uint8
			seriesResult uint8
		)
		if err := rows.Scan(
			&o.MatchID, &matchDate, &mapNum, &gamemode, &o.MapName,
			&o.Team, &o.TeamAbbr, &o.Player, &kills,
			&teamScore, &oppScore, &mapResult, &seriesResult,
		); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}

		mode, err := models.ParseGamemode(gamemode)
		if err != nil {
			return nil, fmt.Errorf("match %d map %d: %w", o.MatchID, mapNum, err)
		}
		if !models.ValidMap(mode, o.MapName) {
			return nil, fmt.Errorf("match %d map %d: map %q is not in the %s pool",
				o.MatchID, mapNum, o.MapName, mode)
		}

		o.MatchDate = matchDate
		o.MapNum = int(mapNum)
		o.Gamemode = mode
		o.Kills = int(kills)
		o.TeamScore = int(teamScore)
		o.OppScore = int(oppScore)
		o.MapResult = int(mapResult)
		o.SeriesResult = int(seriesResult)
		obs = append(obs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("observation row iteration failed: %w", err)
	}

	s.logger.Infow("Loaded observations", "rows", len(obs))
	return obs, nil
}
