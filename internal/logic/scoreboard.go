package logic

import (
	"fmt"
	"sort"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// BuildScoreboard pairs two teams' per-map player box scores side by side,
// optionally scoped to a mode and map. For every (match, map) in which team
// faced opponent, both sides' rows are ordered deterministically (kills
// descending, player name ascending) and joined by position. The two halves
// must have identical row counts; a mismatch means the rosters are
// misaligned and yields a *DataIntegrityError instead of a silently
// shuffled scoreboard.
func BuildScoreboard(obs []models.Observation, team, opponent string, mode models.Gamemode, mapName string) ([]models.ScoreboardRow, error) {
	primary := make(map[matchMapKey][]models.Observation)
	secondary := make(map[matchMapKey][]models.Observation)
	for _, o := range obs {
		if mode != "" && o.Gamemode != mode {
			continue
		}
		if mapName != "" && o.MapName != mapName {
			continue
		}
		k := matchMapKey{o.MatchID, o.MapNum}
		switch {
		case o.Team == team && o.Opponent == opponent:
			primary[k] = append(primary[k], o)
		case o.Team == opponent && o.Opponent == team:
			secondary[k] = append(secondary[k], o)
		}
	}

	var rows []models.ScoreboardRow
	for k, side := range primary {
		other := secondary[k]
		if len(other) != len(side) {
			return nil, &DataIntegrityError{
				MatchID: k.matchID,
				MapNum:  k.mapNum,
				Detail: fmt.Sprintf("scoreboard halves misaligned: %s has %d rows, %s has %d",
					team, len(side), opponent, len(other)),
			}
		}
		sortBoxScore(side)
		sortBoxScore(other)
		for i, a := range side {
			b := other[i]
			rows = append(rows, models.ScoreboardRow{
				MatchID:   a.MatchID,
				MatchDate: a.MatchDate,
				MapNum:    a.MapNum,
				Gamemode:  a.Gamemode,
				MapName:   a.MapName,
				TeamAbbr:  a.TeamAbbr,
				Player:    a.Player,
				Kills:     a.Kills,
				TeamScore: a.TeamScore,
				OppAbbr:   b.TeamAbbr,
				OppPlayer: b.Player,
				OppKills:  b.Kills,
				OppScore:  b.TeamScore,
			})
		}
	}

	// Most recent match first, maps in series order, top fraggers first.
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.MatchDate.Equal(b.MatchDate) {
			return a.MatchDate.After(b.MatchDate)
		}
		if a.MatchID != b.MatchID {
			return a.MatchID > b.MatchID
		}
		if a.MapNum != b.MapNum {
			return a.MapNum < b.MapNum
		}
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		return a.Player < b.Player
	})
	return rows, nil
}

func sortBoxScore(side []models.Observation) {
	sort.Slice(side, func(i, j int) bool {
		if side[i].Kills != side[j].Kills {
			return side[i].Kills > side[j].Kills
		}
		return side[i].Player < side[j].Player
	})
}
