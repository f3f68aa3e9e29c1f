package handler

import (
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/user"
)

// HandleGetState returns the full player snapshot
// @Summary Get player state
// @Description Returns gold, xp, level, plots and inventory for a player
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.PlayerState
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /api/v1/player/state [get]
func HandleGetState(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		state, err := userService.GetState(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}

		log.Debug("State retrieved", "playerID", playerID, "level", state.Level)
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleGetInventory returns the player's current holdings
// @Summary Get player inventory
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {array} domain.InventoryEntry
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /api/v1/player/inventory [get]
func HandleGetInventory(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		inventory, err := userService.GetInventory(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		log.Debug("Inventory retrieved", "playerID", playerID, "entries", len(inventory))
		respondJSON(w, http.StatusOK, inventory)
	}
}
