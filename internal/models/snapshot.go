package models

import "time"

// Snapshot is the immutable derived view of one full dataset refresh.
// The refresher builds a complete new Snapshot and swaps it in atomically;
// readers never see a partially recomputed view.
type Snapshot struct {
	ID       string    `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`

	Observations    []Observation   `json:"-"`
	Teams           []Team          `json:"-"`
	TeamSummaries   []TeamSummary   `json:"-"`
	SeriesSummaries []SeriesSummary `json:"-"`
	Lines           []PropLine      `json:"-"`
}
