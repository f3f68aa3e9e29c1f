package handler

import (
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/user"
)

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Gold     int    `json:"gold"`
}

// HandleRegister creates a new player account
// @Summary Register a new player
// @Description Creates an account with the starting gold and plots
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid username or password"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Router /api/v1/auth/register [post]
func HandleRegister(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		player, err := userService.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "Register", err)
			return
		}

		log.Info("Registration successful", "username", player.Username)
		respondJSON(w, http.StatusCreated, AuthResponse{
			PlayerID: player.ID,
			Username: player.Username,
			Gold:     player.Gold,
		})
	}
}

// HandleLogin verifies credentials and returns the player ID
// @Summary Log in
// @Description Verifies a username and password pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func HandleLogin(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		player, err := userService.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		log.Info("Login successful", "username", player.Username)
		respondJSON(w, http.StatusOK, AuthResponse{
			PlayerID: player.ID,
			Username: player.Username,
			Gold:     player.Gold,
		})
	}
}
