package handler

import (
	"net/http"

	"github.com/willobee/FarmPatch_Go/internal/economy"
	"github.com/willobee/FarmPatch_Go/internal/logger"
)

// BuyItemRequest represents the request to buy items from the market
type BuyItemRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Item     string `json:"item" validate:"required,itemname"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// SellItemRequest represents the request to sell items to the market
type SellItemRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Item     string `json:"item" validate:"required,itemname"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// HandleBuyItem purchases items for gold
// @Summary Buy items
// @Description Buys a quantity of an item at the catalog buy price
// @Tags market
// @Accept json
// @Produce json
// @Param request body BuyItemRequest true "Buy request"
// @Success 200 {object} economy.BuyResult
// @Failure 400 {object} ErrorResponse "Unknown item, not buyable, or not enough gold"
// @Router /api/v1/market/buy [post]
func HandleBuyItem(economyService economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		result, err := economyService.BuyItem(r.Context(), req.PlayerID, req.Item, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		log.Info("Item bought",
			"playerID", req.PlayerID,
			"item", req.Item,
			"quantity", result.Quantity,
			"goldSpent", result.GoldSpent)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSellItem sells items for gold
// @Summary Sell items
// @Description Sells a quantity of an item at the catalog sell price
// @Tags market
// @Accept json
// @Produce json
// @Param request body SellItemRequest true "Sell request"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse "Unknown item or not enough held"
// @Router /api/v1/market/sell [post]
func HandleSellItem(economyService economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		result, err := economyService.SellItem(r.Context(), req.PlayerID, req.Item, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Sell item", err)
			return
		}

		log.Info("Item sold",
			"playerID", req.PlayerID,
			"item", req.Item,
			"quantity", result.Quantity,
			"goldEarned", result.GoldEarned)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetPrices returns the market price list
// @Summary Get market prices
// @Description Returns buy and sell prices for every catalog item
// @Tags market
// @Produce json
// @Success 200 {array} economy.Price
// @Router /api/v1/market/prices [get]
func HandleGetPrices(economyService economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		prices := economyService.GetPrices(r.Context())

		log.Debug("Prices retrieved", "count", len(prices))
		respondJSON(w, http.StatusOK, prices)
	}
}
