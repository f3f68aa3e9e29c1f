package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/item"
	"github.com/willobee/FarmPatch_Go/internal/repository/repositorytest"
)

func testCatalog() *item.Catalog {
	seedPrice := 10
	return item.NewCatalog([]item.Definition{
		{Name: "carrot", DisplayName: "Carrot", SellPrice: 30},
		{
			Name:        "carrot_seed",
			DisplayName: "Carrot Seed",
			BuyPrice:    &seedPrice,
			SellPrice:   5,
			Growth:      &item.Growth{Crop: "carrot", GrowSeconds: 60, StageCount: 4, Yield: 1, XPReward: 10},
		},
	})
}

func newTestService(repo *repositorytest.FakePlayer) Service {
	return NewService(repo, concurrency.NewLockManager(), testCatalog())
}

func TestBuyItem(t *testing.T) {
	ctx := context.Background()

	t.Run("successful buy", func(t *testing.T) {
		// ARRANGE
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "alice", Gold: 100}, 0)
		svc := newTestService(repo)

		// ACT
		result, err := svc.BuyItem(ctx, player.ID, "carrot_seed", 3)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, 3, result.Quantity)
		assert.Equal(t, 10, result.UnitPrice)
		assert.Equal(t, 30, result.GoldSpent)
		assert.Equal(t, 70, result.GoldRemaining)
		assert.Equal(t, 3, result.NewQuantity)

		updated, err := repo.GetPlayerByID(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 70, updated.Gold)
	})

	t.Run("buy stacks onto held quantity", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "bob", Gold: 1000}, 0)
		repo.SeedInventory(player.ID, "carrot_seed", 7)
		svc := newTestService(repo)

		result, err := svc.BuyItem(ctx, player.ID, "carrot_seed", 2)
		require.NoError(t, err)
		assert.Equal(t, 9, result.NewQuantity)
	})

	t.Run("quantity clamped to cap", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "carol", Gold: 10_000}, 0)
		svc := newTestService(repo)

		result, err := svc.BuyItem(ctx, player.ID, "carrot_seed", 500)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxTransactionQuantity, result.Quantity)
		assert.Equal(t, domain.MaxTransactionQuantity*10, result.GoldSpent)
	})

	t.Run("insufficient gold reports cost and balance", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "dave", Gold: 25}, 0)
		svc := newTestService(repo)

		_, err := svc.BuyItem(ctx, player.ID, "carrot_seed", 3)
		require.ErrorIs(t, err, domain.ErrInsufficientGold)
		assert.Contains(t, err.Error(), "costs 30 gold, have 25")

		updated, err := repo.GetPlayerByID(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, updated.Gold, "failed buy must not touch gold")
	})

	t.Run("unknown item", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "erin", Gold: 100}, 0)
		svc := newTestService(repo)

		_, err := svc.BuyItem(ctx, player.ID, "mystery_box", 1)
		assert.ErrorIs(t, err, domain.ErrUnknownItem)
	})

	t.Run("item without buy price", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "frank", Gold: 100}, 0)
		svc := newTestService(repo)

		_, err := svc.BuyItem(ctx, player.ID, "carrot", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotForSale)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "gina", Gold: 100}, 0)
		svc := newTestService(repo)

		_, err := svc.BuyItem(ctx, player.ID, "carrot_seed", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSellItem(t *testing.T) {
	ctx := context.Background()

	t.Run("successful sell", func(t *testing.T) {
		// ARRANGE
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "alice", Gold: 0}, 0)
		repo.SeedInventory(player.ID, "carrot", 5)
		svc := newTestService(repo)

		// ACT
		result, err := svc.SellItem(ctx, player.ID, "carrot", 2)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, 60, result.GoldEarned)
		assert.Equal(t, 60, result.GoldRemaining)
		assert.Equal(t, 3, result.NewQuantity)
	})

	t.Run("selling everything removes the inventory row", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "bob", Gold: 0}, 0)
		repo.SeedInventory(player.ID, "carrot", 2)
		svc := newTestService(repo)

		result, err := svc.SellItem(ctx, player.ID, "carrot", 2)
		require.NoError(t, err)
		assert.Equal(t, 0, result.NewQuantity)

		inv, err := repo.GetInventory(ctx, player.ID)
		require.NoError(t, err)
		assert.Empty(t, inv)
	})

	t.Run("insufficient inventory", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "carol", Gold: 0}, 0)
		repo.SeedInventory(player.ID, "carrot", 1)
		svc := newTestService(repo)

		_, err := svc.SellItem(ctx, player.ID, "carrot", 5)
		require.ErrorIs(t, err, domain.ErrInsufficientInventory)
		assert.Contains(t, err.Error(), "have 1")

		inv, err := repo.GetInventory(ctx, player.ID)
		require.NoError(t, err)
		require.Len(t, inv, 1)
		assert.Equal(t, 1, inv[0].Quantity, "failed sell must not touch inventory")
	})

	t.Run("selling unheld item", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "dave", Gold: 0}, 0)
		svc := newTestService(repo)

		_, err := svc.SellItem(ctx, player.ID, "carrot", 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	})

	t.Run("buy then sell never profits", func(t *testing.T) {
		// Seed sell price is below its buy price, so a round trip loses gold.
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "erin", Gold: 1000}, 0)
		svc := newTestService(repo)

		_, err := svc.BuyItem(ctx, player.ID, "carrot_seed", 10)
		require.NoError(t, err)
		_, err = svc.SellItem(ctx, player.ID, "carrot_seed", 10)
		require.NoError(t, err)

		updated, err := repo.GetPlayerByID(ctx, player.ID)
		require.NoError(t, err)
		assert.Less(t, updated.Gold, 1000)
	})
}

func TestGetPrices(t *testing.T) {
	repo := repositorytest.NewFakePlayer()
	svc := newTestService(repo)

	prices := svc.GetPrices(context.Background())
	require.Len(t, prices, 2)

	// Catalog order is alphabetical.
	assert.Equal(t, "carrot", prices[0].Name)
	assert.Nil(t, prices[0].BuyPrice)
	assert.Equal(t, 30, prices[0].SellPrice)

	assert.Equal(t, "carrot_seed", prices[1].Name)
	require.NotNil(t, prices[1].BuyPrice)
	assert.Equal(t, 10, *prices[1].BuyPrice)
}
