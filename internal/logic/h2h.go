package logic

import (
	"fmt"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// MapRecord returns team's map-level head-to-head record against opponent,
// formatted "W - L". Mode and mapName scope the record when non-empty.
// Observations are deduplicated to one game per (match, map); a pairing
// with no games returns "0 - 0".
func MapRecord(obs []models.Observation, team, opponent string, mode models.Gamemode, mapName string) string {
	wins, total := 0, 0
	seen := make(map[matchMapKey]struct{})
	for _, o := range obs {
		if o.Team != team || o.Opponent != opponent {
			continue
		}
		if mode != "" && o.Gamemode != mode {
			continue
		}
		if mapName != "" && o.MapName != mapName {
			continue
		}
		k := matchMapKey{o.MatchID, o.MapNum}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		wins += o.MapResult
		total++
	}
	return fmt.Sprintf("%d - %d", wins, total-wins)
}

// SeriesRecord returns team's series-level head-to-head record against
// opponent, formatted "W - L". A series is won by taking more maps than
// the opponent.
func SeriesRecord(series []models.SeriesSummary, team, opponent string) string {
	wins, total := 0, 0
	for _, s := range series {
		if s.Team != team || s.Opponent != opponent {
			continue
		}
		if s.SeriesScoreDiff > 0 {
			wins++
		}
		total++
	}
	return fmt.Sprintf("%d - %d", wins, total-wins)
}
