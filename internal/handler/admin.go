package handler

import (
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/user"
)

// SetGoldRequest represents the request to override a player's gold balance
type SetGoldRequest struct {
	Username string `json:"username" validate:"required"`
	Gold     int    `json:"gold" validate:"gte=0"`
}

// HandleListPlayers returns every registered player
// @Summary List players
// @Description Returns all registered players. Operator tooling only.
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Player
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Router /api/v1/admin/players [get]
func HandleListPlayers(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		players, err := userService.ListPlayers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List players", err)
			return
		}

		log.Info("Players listed", "count", len(players))
		respondJSON(w, http.StatusOK, players)
	}
}

// HandleSetGold overwrites a player's gold balance
// @Summary Set player gold
// @Description Overwrites the gold balance of a player. Operator tooling only.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetGoldRequest true "Set gold request"
// @Success 200 {object} domain.Player
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /api/v1/admin/gold [post]
func HandleSetGold(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SetGoldRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set gold"); err != nil {
			return
		}

		player, err := userService.SetGold(r.Context(), req.Username, req.Gold)
		if err != nil {
			respondServiceError(w, r, "Set gold", err)
			return
		}

		log.Info("Gold set", "username", req.Username, "gold", req.Gold)
		respondJSON(w, http.StatusOK, player)
	}
}

// HandleDeletePlayer removes an account and everything it owns
// @Summary Delete a player
// @Description Deletes an account, its plots and its inventory. Operator tooling only.
// @Tags admin
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /api/v1/admin/player [delete]
func HandleDeletePlayer(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		if err := userService.DeleteAccount(r.Context(), username); err != nil {
			respondServiceError(w, r, "Delete player", err)
			return
		}

		log.Info("Player deleted", "username", username)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Account deleted"})
	}
}
