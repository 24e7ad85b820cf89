package logic

import (
	"math"
	"sort"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type teamModeMapKey struct {
	team    string
	mode    models.Gamemode
	mapName string
}

type teamMapGameKey struct {
	matchID int64
	mapNum  int
	team    string
}

// BuildTeamSummaries computes the dense win/loss table over
// teams x gamemodes x (map pool + Overall). Observations are deduplicated
// to one game per (match, map, team) first, since every player on the
// roster shares the same map result. Teams that have never played a
// combination still get a row, with zero counts and a nil win percentage.
//
// Output ordering is fixed: gamemode rank, then map rank (Overall last),
// then team name.
func BuildTeamSummaries(obs []models.Observation, teams []models.Team) []models.TeamSummary {
	wins := make(map[teamModeMapKey]int)
	totals := make(map[teamModeMapKey]int)

	seen := make(map[teamMapGameKey]struct{})
	for _, o := range obs {
		gk := teamMapGameKey{o.MatchID, o.MapNum, o.Team}
		if _, dup := seen[gk]; dup {
			continue
		}
		seen[gk] = struct{}{}

		perMap := teamModeMapKey{o.Team, o.Gamemode, o.MapName}
		wins[perMap] += o.MapResult
		totals[perMap]++

		overall := teamModeMapKey{o.Team, o.Gamemode, models.OverallMap}
		wins[overall] += o.MapResult
		totals[overall]++
	}

	names := teamNames(teams, obs)

	var out []models.TeamSummary
	for _, mode := range models.Gamemodes() {
		mapNames := append(append([]string{}, models.MapPool(mode)...), models.OverallMap)
		for _, mapName := range mapNames {
			for _, team := range names {
				k := teamModeMapKey{team, mode, mapName}
				total := totals[k]
				w := wins[k]
				out = append(out, models.TeamSummary{
					Team:     team,
					Gamemode: mode,
					MapName:  mapName,
					Wins:     w,
					Losses:   total - w,
					Total:    total,
					WinPct:   winPct(w, total),
				})
			}
		}
	}
	return out
}

// teamNames merges the reference team list with any team observed in the
// dataset but missing from the reference store, sorted by name.
func teamNames(teams []models.Team, obs []models.Observation) []string {
	set := make(map[string]struct{}, len(teams))
	var names []string
	for _, t := range teams {
		if _, ok := set[t.Name]; !ok {
			set[t.Name] = struct{}{}
			names = append(names, t.Name)
		}
	}
	for _, o := range obs {
		if _, ok := set[o.Team]; !ok {
			set[o.Team] = struct{}{}
			names = append(names, o.Team)
		}
	}
	sort.Strings(names)
	return names
}

// winPct returns wins/total rounded to 2 decimals, or nil when no games
// were played. Nil means "no data", which display layers render as blank
// rather than 0%.
func winPct(wins, total int) *float64 {
	if total == 0 {
		return nil
	}
	p := math.Round(float64(wins)/float64(total)*100) / 100
	return &p
}
