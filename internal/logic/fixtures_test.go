package logic

import (
	"time"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// day returns a fixed match date offset n days into the season, so tests
// can order matches without repeating time.Date everywhere.
func day(n int) time.Time {
	return time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// mapGame emits one observation per player for a single (match, map) side.
// Scores are mirrored by the caller on the other side.
func mapGame(matchID int64, date time.Time, mapNum int, mode models.Gamemode, mapName string,
	team, abbr string, teamScore, oppScore, mapResult int, players map[string]int) []models.Observation {

	var out []models.Observation
	for player, kills := range players {
		out = append(out, models.Observation{
			MatchID:   matchID,
			MatchDate: date,
			MapNum:    mapNum,
			Gamemode:  mode,
			MapName:   mapName,
			Team:      team,
			TeamAbbr:  abbr,
			Player:    player,
			Kills:     kills,
			TeamScore: teamScore,
			OppScore:  oppScore,
			MapResult: mapResult,
		})
	}
	return out
}

// fullMap emits both sides of one map: every player on each roster, with
// mirrored scores and complementary results.
func fullMap(matchID int64, date time.Time, mapNum int, mode models.Gamemode, mapName string,
	teamA, abbrA string, scoreA int, playersA map[string]int,
	teamB, abbrB string, scoreB int, playersB map[string]int) []models.Observation {

	resultA := 0
	if scoreA > scoreB {
		resultA = 1
	}
	out := mapGame(matchID, date, mapNum, mode, mapName, teamA, abbrA, scoreA, scoreB, resultA, playersA)
	out = append(out, mapGame(matchID, date, mapNum, mode, mapName, teamB, abbrB, scoreB, scoreA, 1-resultA, playersB)...)
	return out
}

// thievesVsFaze is a two-map fixture used across tests: LA Thieves beat
// Atlanta FaZe on Hardpoint Karachi, then lose the SnD on Rio.
func thievesVsFaze() []models.Observation {
	var obs []models.Observation
	obs = append(obs, fullMap(101, day(0), 1, models.Hardpoint, "Karachi",
		"LA Thieves", "LAT", 250, map[string]int{"Kenny": 28, "Envoy": 22},
		"Atlanta FaZe", "ATL", 198, map[string]int{"Simp": 25, "aBeZy": 24})...)
	obs = append(obs, fullMap(101, day(0), 2, models.SearchAndDestroy, "Rio",
		"LA Thieves", "LAT", 4, map[string]int{"Kenny": 5, "Envoy": 7},
		"Atlanta FaZe", "ATL", 6, map[string]int{"Simp": 9, "aBeZy": 6})...)
	return obs
}
