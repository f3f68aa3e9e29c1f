package handler

import (
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/land"
	"github.com/willobee/FarmPatch_Go/internal/logger"
)

// UpgradeLandRequest represents the request to unlock the next plot
type UpgradeLandRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

// HandleUpgradeLand unlocks the player's next plot
// @Summary Unlock the next plot
// @Description Spends gold to unlock one additional plot, subject to the level gate
// @Tags land
// @Accept json
// @Produce json
// @Param request body UpgradeLandRequest true "Upgrade request"
// @Success 200 {object} land.UpgradeResult
// @Failure 400 {object} ErrorResponse "Not enough gold or already at max"
// @Failure 403 {object} ErrorResponse "Level too low"
// @Router /api/v1/land/upgrade [post]
func HandleUpgradeLand(landService land.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpgradeLandRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade land"); err != nil {
			return
		}

		result, err := landService.Upgrade(r.Context(), req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Upgrade land", err)
			return
		}

		log.Info("Plot unlocked",
			"playerID", req.PlayerID,
			"unlockedPlots", result.UnlockedPlots,
			"goldSpent", result.GoldSpent)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetLandQuote returns the cost and requirements for the next plot
// @Summary Quote the next plot
// @Description Returns the cost and level requirement of the next land upgrade
// @Tags land
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} land.Quote
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /api/v1/land/quote [get]
func HandleGetLandQuote(landService land.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		quote, err := landService.GetQuote(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get land quote", err)
			return
		}

		log.Debug("Land quote retrieved", "playerID", playerID, "atMax", quote.AtMax)
		respondJSON(w, http.StatusOK, quote)
	}
}
