package logic

import (
	"fmt"
	"sort"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// BuildSeriesSummaries tallies map wins and losses per (match, team) and
// attaches the opposing team by sibling lookup within the match. Every
// match must reduce to exactly two team rows; anything else is a
// *DataIntegrityError.
func BuildSeriesSummaries(obs []models.Observation) ([]models.SeriesSummary, error) {
	type matchTeamKey struct {
		matchID int64
		team    string
	}

	tallies := make(map[matchTeamKey]*models.SeriesSummary)
	teamsByMatch := make(map[int64][]string)

	seen := make(map[teamMapGameKey]struct{})
	for _, o := range obs {
		gk := teamMapGameKey{o.MatchID, o.MapNum, o.Team}
		if _, dup := seen[gk]; dup {
			continue
		}
		seen[gk] = struct{}{}

		k := matchTeamKey{o.MatchID, o.Team}
		s := tallies[k]
		if s == nil {
			s = &models.SeriesSummary{
				MatchID:   o.MatchID,
				MatchDate: o.MatchDate,
				Team:      o.Team,
				TeamAbbr:  o.TeamAbbr,
			}
			tallies[k] = s
			teamsByMatch[o.MatchID] = append(teamsByMatch[o.MatchID], o.Team)
		}
		if o.MapResult == 1 {
			s.MapWins++
		} else {
			s.MapLosses++
		}
	}

	var out []models.SeriesSummary
	for matchID, teams := range teamsByMatch {
		if len(teams) != 2 {
			return nil, &DataIntegrityError{
				MatchID: matchID,
				Detail:  fmt.Sprintf("expected exactly 2 teams in series, found %d", len(teams)),
			}
		}
		a := tallies[matchTeamKey{matchID, teams[0]}]
		b := tallies[matchTeamKey{matchID, teams[1]}]
		a.Opponent, a.OppAbbr = b.Team, b.TeamAbbr
		b.Opponent, b.OppAbbr = a.Team, a.TeamAbbr
		a.SeriesScoreDiff = a.MapWins - a.MapLosses
		b.SeriesScoreDiff = b.MapWins - b.MapLosses
		out = append(out, *a, *b)
	}

	// Most recent series first; team name breaks ties within a match.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID > out[j].MatchID
		}
		return out[i].Team < out[j].Team
	})
	return out, nil
}
