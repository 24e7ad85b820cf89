package models

import "fmt"

// Gamemode is the ruleset played on a single map within a series.
type Gamemode string

const (
	Hardpoint        Gamemode = "Hardpoint"
	SearchAndDestroy Gamemode = "Search & Destroy"
	Control          Gamemode = "Control"
)

// OverallMap is the synthetic map name used for per-mode rollup rows.
const OverallMap = "Overall"

// Gamemodes returns every mode in display order.
func Gamemodes() []Gamemode {
	return []Gamemode{Hardpoint, SearchAndDestroy, Control}
}

var gamemodeRank = map[Gamemode]int{
	Hardpoint:        0,
	SearchAndDestroy: 1,
	Control:          2,
}

// mapPools holds the active competitive map pool per mode, in display order.
// The rollup sentinel OverallMap is not part of any pool; it always sorts last.
var mapPools = map[Gamemode][]string{
	Hardpoint:        {"6 Star", "Karachi", "Rio", "Sub Base", "Vista"},
	SearchAndDestroy: {"6 Star", "Highrise", "Invasion", "Karachi", "Rio"},
	Control:          {"Highrise", "Invasion", "Karachi"},
}

var mapRanks = func() map[Gamemode]map[string]int {
	ranks := make(map[Gamemode]map[string]int, len(mapPools))
	for mode, pool := range mapPools {
		ranks[mode] = make(map[string]int, len(pool)+1)
		for i, name := range pool {
			ranks[mode][name] = i
		}
		ranks[mode][OverallMap] = len(pool)
	}
	return ranks
}()

// ParseGamemode converts a raw gamemode string into a Gamemode.
// Unknown values are an error: sorting and map-pool lookups are only
// defined over the fixed enumeration.
func ParseGamemode(s string) (Gamemode, error) {
	mode := Gamemode(s)
	if _, ok := gamemodeRank[mode]; !ok {
		return "", fmt.Errorf("unknown gamemode %q", s)
	}
	return mode, nil
}

// Rank returns the display rank of the mode. Unknown modes sort last.
func (g Gamemode) Rank() int {
	if r, ok := gamemodeRank[g]; ok {
		return r
	}
	return len(gamemodeRank)
}

// MapPool returns the competitive map pool for the mode, in display order.
func MapPool(g Gamemode) []string {
	return mapPools[g]
}

// ValidMap reports whether name is in the mode's competitive pool.
// The Overall sentinel is a display construct, not a playable map.
func ValidMap(g Gamemode, name string) bool {
	if name == OverallMap {
		return false
	}
	_, ok := mapRanks[g][name]
	return ok
}

// MapRank returns the display rank of a map within its mode's pool,
// with OverallMap ranking after every concrete map.
func MapRank(g Gamemode, name string) int {
	if r, ok := mapRanks[g][name]; ok {
		return r
	}
	return len(mapRanks[g]) + 1
}
