package models

// SideOver, SideUnder and SideNeverPlayed are the recommendation values a
// prop report can carry.
const (
	SideOver        = "Over"
	SideUnder       = "Under"
	SideNeverPlayed = "Never Played"
)

// PropLine is one posted betting line from the line provider snapshot.
// Scope identifies the prop market, e.g. "Maps 1-3 Kills".
type PropLine struct {
	Player   string  `json:"player"`
	TeamAbbr string  `json:"team_abbr"`
	Scope    string  `json:"scope"`
	Line     float64 `json:"line"`
}

// PropReport is the over/under breakdown of a player's kills against a line.
// Percentage is nil when the player has no qualifying maps (Side is
// SideNeverPlayed); a player with data always gets a percentage, even 0.
type PropReport struct {
	Side       string `json:"side"`
	Percentage *int   `json:"percentage"`
	Overs      int    `json:"overs"`
	Unders     int    `json:"unders"`
	Pushes     int    `json:"pushes"`
}

// PropStreakReport is the player's current over/under run against a line.
// Streak is signed: positive = consecutive overs, negative = consecutive
// unders. Played is false when no observations match the filter.
type PropStreakReport struct {
	Streak int  `json:"streak"`
	Played bool `json:"played"`
}

// PropCard bundles everything the player prop view renders for one line.
type PropCard struct {
	Player      string           `json:"player"`
	Line        float64          `json:"line"`
	Report      PropReport       `json:"report"`
	Streak      PropStreakReport `json:"streak"`
	RecentKills []int            `json:"recent_kills"`
}
