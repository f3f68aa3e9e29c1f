package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willobee/FarmPatch_Go/internal/economy"
)

func TestHandleBuyItem(t *testing.T) {
	t.Run("successful buy", func(t *testing.T) {
		// ARRANGE
		env := newTestEnv(t)
		playerID := env.register(t, "alice")
		env.giveGold(t, playerID, 100)

		// ACT
		rec := postJSON(t, HandleBuyItem(env.economy), "/api/v1/market/buy", BuyItemRequest{
			PlayerID: playerID,
			Item:     "carrot_seed",
			Quantity: 3,
		})

		// ASSERT
		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody[economy.BuyResult](t, rec)
		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, 30, result.GoldSpent)
		assert.Equal(t, 70, result.GoldRemaining)
		assert.Equal(t, 3, result.NewQuantity)
	})

	t.Run("not enough gold", func(t *testing.T) {
		env := newTestEnv(t)
		playerID := env.register(t, "alice")
		env.giveGold(t, playerID, 5)

		rec := postJSON(t, HandleBuyItem(env.economy), "/api/v1/market/buy", BuyItemRequest{
			PlayerID: playerID,
			Item:     "carrot_seed",
			Quantity: 1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("item without a buy price", func(t *testing.T) {
		env := newTestEnv(t)
		playerID := env.register(t, "alice")

		rec := postJSON(t, HandleBuyItem(env.economy), "/api/v1/market/buy", BuyItemRequest{
			PlayerID: playerID,
			Item:     "carrot",
			Quantity: 1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		assert.Equal(t, ErrMsgItemNotForSaleError, resp.Error)
	})

	t.Run("unknown item", func(t *testing.T) {
		env := newTestEnv(t)
		playerID := env.register(t, "alice")

		rec := postJSON(t, HandleBuyItem(env.economy), "/api/v1/market/buy", BuyItemRequest{
			PlayerID: playerID,
			Item:     "moonfruit",
			Quantity: 1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		assert.Equal(t, ErrMsgUnknownItemError, resp.Error)
	})

	t.Run("zero quantity rejected by validation", func(t *testing.T) {
		env := newTestEnv(t)
		playerID := env.register(t, "alice")

		rec := postJSON(t, HandleBuyItem(env.economy), "/api/v1/market/buy", BuyItemRequest{
			PlayerID: playerID,
			Item:     "carrot_seed",
			Quantity: 0,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSellItem(t *testing.T) {
	t.Run("successful sell", func(t *testing.T) {
		env := newTestEnv(t)
		playerID := env.register(t, "alice")
		env.giveGold(t, playerID, 0)
		env.repo.SeedInventory(playerID, "carrot", 5)

		rec := postJSON(t, HandleSellItem(env.economy), "/api/v1/market/sell", SellItemRequest{
			PlayerID: playerID,
			Item:     "carrot",
			Quantity: 2,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody[economy.SellResult](t, rec)
		assert.Equal(t, 60, result.GoldEarned)
		assert.Equal(t, 60, result.GoldRemaining)
		assert.Equal(t, 3, result.NewQuantity)
	})

	t.Run("not enough held", func(t *testing.T) {
		env := newTestEnv(t)
		playerID := env.register(t, "alice")
		env.repo.SeedInventory(playerID, "carrot", 1)

		rec := postJSON(t, HandleSellItem(env.economy), "/api/v1/market/sell", SellItemRequest{
			PlayerID: playerID,
			Item:     "carrot",
			Quantity: 5,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGetPrices(t *testing.T) {
	env := newTestEnv(t)

	rec := getRequest(t, HandleGetPrices(env.economy), "/api/v1/market/prices")

	require.Equal(t, http.StatusOK, rec.Code)
	prices := decodeBody[[]economy.Price](t, rec)
	require.Len(t, prices, 2)

	byName := make(map[string]economy.Price, len(prices))
	for _, p := range prices {
		byName[p.Name] = p
	}
	assert.Nil(t, byName["carrot"].BuyPrice)
	require.NotNil(t, byName["carrot_seed"].BuyPrice)
	assert.Equal(t, 10, *byName["carrot_seed"].BuyPrice)
	assert.Equal(t, 30, byName["carrot"].SellPrice)
}
