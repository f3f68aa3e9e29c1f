package handler

import (
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/farm"
	"github.com/willobee/FarmPatch_Go/internal/logger"
)

// PlantRequest represents the request to plant a crop on a plot
type PlantRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	PlotID   int64  `json:"plot_id" validate:"required,min=1"`
	Crop     string `json:"crop" validate:"required,itemname"`
}

// HarvestRequest represents the request to harvest a single plot
type HarvestRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	PlotID   int64  `json:"plot_id" validate:"required,min=1"`
}

// HarvestAllRequest represents the request to harvest every ready plot
type HarvestAllRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

// HandlePlant plants a crop on one of the player's plots
// @Summary Plant a crop
// @Description Consumes one seed and starts the growth timer on an empty plot
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 200 {object} farm.PlantResult
// @Failure 400 {object} ErrorResponse "Not enough seeds or unknown crop"
// @Failure 403 {object} ErrorResponse "Plot not owned"
// @Failure 409 {object} ErrorResponse "Plot already planted"
// @Router /api/v1/farm/plant [post]
func HandlePlant(farmService farm.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
			return
		}

		result, err := farmService.Plant(r.Context(), req.PlayerID, req.PlotID, req.Crop)
		if err != nil {
			respondServiceError(w, r, "Plant", err)
			return
		}

		log.Info("Crop planted", "playerID", req.PlayerID, "plotID", req.PlotID, "crop", req.Crop)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleHarvest harvests one plot
// @Summary Harvest a plot
// @Description Collects the yield and xp from a fully grown crop
// @Tags farm
// @Accept json
// @Produce json
// @Param request body HarvestRequest true "Harvest request"
// @Success 200 {object} farm.HarvestResult
// @Failure 400 {object} ErrorResponse "Nothing planted or crop not ready"
// @Failure 403 {object} ErrorResponse "Plot not owned"
// @Router /api/v1/farm/harvest [post]
func HandleHarvest(farmService farm.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HarvestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
			return
		}

		result, err := farmService.Harvest(r.Context(), req.PlayerID, req.PlotID)
		if err != nil {
			respondServiceError(w, r, "Harvest", err)
			return
		}

		log.Info("Plot harvested",
			"playerID", req.PlayerID,
			"plotID", req.PlotID,
			"crop", result.Crop,
			"xp", result.XPGained,
			"leveledUp", result.LeveledUp)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleHarvestAll harvests every ready plot in one pass
// @Summary Harvest all ready plots
// @Description Collects yield and xp from every fully grown crop. An empty
// sweep succeeds with an empty harvested list.
// @Tags farm
// @Accept json
// @Produce json
// @Param request body HarvestAllRequest true "Harvest all request"
// @Success 200 {object} farm.HarvestAllResult
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /api/v1/farm/harvest-all [post]
func HandleHarvestAll(farmService farm.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HarvestAllRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Harvest all"); err != nil {
			return
		}

		result, err := farmService.HarvestAll(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Harvest all", err)
			return
		}

		log.Info("Harvest sweep finished",
			"playerID", req.PlayerID,
			"plots", len(result.Harvested),
			"totalXP", result.TotalXP)
		respondJSON(w, http.StatusOK, result)
	}
}
