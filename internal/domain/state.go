package domain

import "time"

// PlotView is the display-ready projection of a plot used in state reads.
// Stage and RemainingSeconds are derivatives of the stored timestamp and the
// catalog grow time; they never affect gameplay decisions.
type PlotView struct {
	ID               int64      `json:"plot_id"`
	Crop             *string    `json:"crop,omitempty"`
	PlantedAt        *time.Time `json:"planted_at,omitempty"`
	State            PlotState  `json:"state"`
	Stage            int        `json:"stage,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds,omitempty"`
}

// PlayerState is the full snapshot returned by the state-read operation.
type PlayerState struct {
	PlayerID      string           `json:"player_id"`
	Username      string           `json:"username"`
	Gold          int              `json:"gold"`
	XP            int64            `json:"xp"`
	Level         int              `json:"level"`
	XPIntoLevel   int64            `json:"xp_into_level"`
	XPToNext      int64            `json:"xp_to_next"`
	UnlockedPlots int              `json:"unlocked_plots"`
	Plots         []PlotView       `json:"plots"`
	Inventory     []InventoryEntry `json:"inventory"`
}
