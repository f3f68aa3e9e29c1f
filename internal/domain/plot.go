package domain

import "time"

// PlotState describes where a plot is in its growth cycle.
type PlotState string

const (
	PlotEmpty   PlotState = "EMPTY"
	PlotGrowing PlotState = "GROWING"
	PlotReady   PlotState = "READY"
)

// Plot is a single player-owned field slot.
// Invariant: Crop and PlantedAt are both set or both nil.
type Plot struct {
	ID        int64      `json:"plot_id"`
	PlayerID  string     `json:"player_id"`
	Crop      *string    `json:"crop,omitempty"`
	PlantedAt *time.Time `json:"planted_at,omitempty"`
}

// IsPlanted reports whether the plot currently holds a crop.
func (p *Plot) IsPlanted() bool {
	return p.Crop != nil && p.PlantedAt != nil
}

// Elapsed returns the time since planting, or zero if the plot is empty.
func (p *Plot) Elapsed(now time.Time) time.Duration {
	if !p.IsPlanted() {
		return 0
	}
	return now.Sub(*p.PlantedAt)
}
