package logic

import (
	"math"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// PlayerProp computes the over/under breakdown for a player's kills against
// a betting line, optionally scoped to a mode and map. The recommendation
// goes to whichever side has more hits, ties to Over. Pushes (kills exactly
// on the line) count toward neither side but are included in the total, so
// the percentage is support for the recommended side out of all qualifying
// maps. An empty scope returns the Never Played sentinel with a nil
// percentage rather than a 0% report.
func PlayerProp(obs []models.Observation, player string, mode models.Gamemode, mapName string, line float64) models.PropReport {
	overs, unders, pushes := 0, 0, 0
	for _, o := range playerRows(obs, player, mode, mapName) {
		switch overUnderSign(o.Kills, line) {
		case 1:
			overs++
		case -1:
			unders++
		default:
			pushes++
		}
	}

	total := overs + unders + pushes
	if total == 0 {
		return models.PropReport{Side: models.SideNeverPlayed}
	}

	side, top := models.SideOver, overs
	if unders > overs {
		side, top = models.SideUnder, unders
	}
	pct := int(math.Round(float64(top) / float64(total) * 100))
	return models.PropReport{
		Side:       side,
		Percentage: &pct,
		Overs:      overs,
		Unders:     unders,
		Pushes:     pushes,
	}
}
