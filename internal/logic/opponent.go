package logic

import (
	"fmt"
	"sort"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

type matchMapKey struct {
	matchID int64
	mapNum  int
}

// AttachOpponents derives the opponent view of every observation: for each
// row it looks up the unique sibling team in the same (match, map) group and
// fills Opponent, OppAbbr, TotalScore and ScoreDiff.
//
// Every (match, map) group must contain exactly two distinct teams with
// equal row counts, and each team's recorded OppScore must equal the
// sibling's TeamScore. Any violation returns a *DataIntegrityError rather
// than silently mispairing.
func AttachOpponents(obs []models.Observation) ([]models.Observation, error) {
	groups := make(map[matchMapKey][]int)
	for i, o := range obs {
		key := matchMapKey{o.MatchID, o.MapNum}
		groups[key] = append(groups[key], i)
	}

	out := make([]models.Observation, len(obs))
	copy(out, obs)

	for key, idxs := range groups {
		// One exemplar row and a row count per team in the group.
		exemplar := make(map[string]models.Observation)
		counts := make(map[string]int)
		var teams []string
		for _, i := range idxs {
			o := obs[i]
			if _, ok := exemplar[o.Team]; !ok {
				exemplar[o.Team] = o
				teams = append(teams, o.Team)
			}
			counts[o.Team]++
		}

		if len(teams) != 2 {
			return nil, &DataIntegrityError{
				MatchID: key.matchID,
				MapNum:  key.mapNum,
				Detail:  fmt.Sprintf("expected exactly 2 teams, found %d", len(teams)),
			}
		}
		a, b := teams[0], teams[1]
		if counts[a] != counts[b] {
			return nil, &DataIntegrityError{
				MatchID: key.matchID,
				MapNum:  key.mapNum,
				Detail: fmt.Sprintf("unbalanced rosters: %s has %d rows, %s has %d",
					a, counts[a], b, counts[b]),
			}
		}

		for _, i := range idxs {
			row := &out[i]
			sibling := exemplar[b]
			if row.Team == b {
				sibling = exemplar[a]
			}
			if row.OppScore != sibling.TeamScore {
				return nil, &DataIntegrityError{
					MatchID: key.matchID,
					MapNum:  key.mapNum,
					Detail: fmt.Sprintf("score mismatch: %s records opponent score %d but %s scored %d",
						row.Team, row.OppScore, sibling.Team, sibling.TeamScore),
				}
			}
			row.Opponent = sibling.Team
			row.OppAbbr = sibling.TeamAbbr
			row.TotalScore = row.TeamScore + row.OppScore
			row.ScoreDiff = row.TeamScore - row.OppScore
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.MatchDate.Equal(b.MatchDate) {
			return a.MatchDate.Before(b.MatchDate)
		}
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.MapNum != b.MapNum {
			return a.MapNum < b.MapNum
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.Player < b.Player
	})

	return out, nil
}
