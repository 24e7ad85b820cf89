package logic

import (
	"sort"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// MapStreak returns team's current map win/loss streak in the given scope:
// positive magnitude = consecutive wins, negative = consecutive losses,
// counted from the most recent game backward until the result flips.
// Zero when the team has no games in scope.
func MapStreak(obs []models.Observation, team string, mode models.Gamemode, mapName string) int {
	var rows []models.Observation
	seen := make(map[matchMapKey]struct{})
	for _, o := range obs {
		if o.Team != team {
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
		rows = append(rows, o)
	}
	if len(rows) == 0 {
		return 0
	}
	sortNewestFirst(rows)

	ref := resultSign(rows[0].MapResult)
	streak := 0
	for _, r := range rows {
		if resultSign(r.MapResult) != ref {
			break
		}
		streak++
	}
	return ref * streak
}

// PropStreak returns the player's current over/under run against line.
// Positive = consecutive overs, negative = consecutive unders. A push
// (kills exactly on the line) breaks the run, so a push on the most recent
// map yields a zero streak. Played is false when the player has no maps in
// scope, distinguishing "never played" from a broken streak.
func PropStreak(obs []models.Observation, player string, mode models.Gamemode, mapName string, line float64) models.PropStreakReport {
	rows := playerRows(obs, player, mode, mapName)
	if len(rows) == 0 {
		return models.PropStreakReport{Played: false}
	}
	sortNewestFirst(rows)

	ref := overUnderSign(rows[0].Kills, line)
	if ref == 0 {
		return models.PropStreakReport{Streak: 0, Played: true}
	}
	streak := 0
	for _, r := range rows {
		if overUnderSign(r.Kills, line) != ref {
			break
		}
		streak++
	}
	return models.PropStreakReport{Streak: ref * streak, Played: true}
}

// RecentKills returns the player's kills on their most recent maps in the
// given scope, newest first, capped at limit.
func RecentKills(obs []models.Observation, player string, mode models.Gamemode, mapName string, limit int) []int {
	rows := playerRows(obs, player, mode, mapName)
	sortNewestFirst(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	kills := make([]int, len(rows))
	for i, r := range rows {
		kills[i] = r.Kills
	}
	return kills
}

func playerRows(obs []models.Observation, player string, mode models.Gamemode, mapName string) []models.Observation {
	var rows []models.Observation
	for _, o := range obs {
		if o.Player != player {
			continue
		}
		if mode != "" && o.Gamemode != mode {
			continue
		}
		if mapName != "" && o.MapName != mapName {
			continue
		}
		rows = append(rows, o)
	}
	return rows
}

func sortNewestFirst(rows []models.Observation) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].MatchDate.Equal(rows[j].MatchDate) {
			return rows[i].MatchDate.After(rows[j].MatchDate)
		}
		if rows[i].MatchID != rows[j].MatchID {
			return rows[i].MatchID > rows[j].MatchID
		}
		return rows[i].MapNum > rows[j].MapNum
	})
}

// resultSign maps a binary map result to {+1 win, -1 loss}.
func resultSign(mapResult int) int {
	if mapResult == 1 {
		return 1
	}
	return -1
}

// overUnderSign maps kills against a line to {+1 over, -1 under, 0 push}.
func overUnderSign(kills int, line float64) int {
	k := float64(kills)
	switch {
	case k > line:
		return 1
	case k < line:
		return -1
	default:
		return 0
	}
}
