package farm

import (
	"time"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/item"
)

// Growth progress for a planted plot.
type growthProgress struct {
	State     domain.PlotState
	Stage     int
	Remaining time.Duration
}

// progressFor computes the visual stage and remaining grow time. The stage
// counts down from the remaining time, so a plot sitting exactly on a stage
// boundary still renders the earlier stage; only remaining == 0 maps to the
// final stage.
func progressFor(g *item.Growth, elapsed time.Duration) growthProgress {
	growTime := time.Duration(g.GrowSeconds) * time.Second
	if elapsed >= growTime {
		return growthProgress{State: domain.PlotReady, Stage: g.StageCount}
	}

	stageLen := growTime / time.Duration(g.StageCount)
	remaining := growTime - elapsed
	stage := g.StageCount - int(remaining/stageLen)
	if stage < 1 {
		stage = 1
	}
	return growthProgress{
		State:     domain.PlotGrowing,
		Stage:     stage,
		Remaining: remaining,
	}
}

// PlotViews builds the client-facing view of a player's plots. Plots planted
// with crops no longer in the catalog render as ready with stage zero rather
// than failing the whole state read.
func PlotViews(plots []domain.Plot, catalog *item.Catalog, now time.Time) []domain.PlotView {
	views := make([]domain.PlotView, 0, len(plots))
	for _, plot := range plots {
		view := domain.PlotView{ID: plot.ID, State: domain.PlotEmpty}
		if plot.IsPlanted() {
			view.Crop = plot.Crop
			view.PlantedAt = plot.PlantedAt

			seed, err := catalog.Seed(*plot.Crop)
			if err != nil {
				view.State = domain.PlotReady
			} else {
				progress := progressFor(seed.Growth, plot.Elapsed(now))
				view.State = progress.State
				view.Stage = progress.Stage
				view.RemainingSeconds = int64(progress.Remaining / time.Second)
			}
		}
		views = append(views, view)
	}
	return views
}
