package land

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/repository/repositorytest"
)

func newTestService(repo *repositorytest.FakePlayer) Service {
	return NewService(repo, concurrency.NewLockManager(), progression.NewFlatCurve())
}

func TestUpgrade(t *testing.T) {
	ctx := context.Background()

	t.Run("successful upgrade spends gold and adds plot", func(t *testing.T) {
		// ARRANGE
		repo := repositorytest.NewFakePlayer()
		// Level 3 on the flat curve, enough for a fifth plot.
		player := repo.Seed(domain.Player{Username: "alice", Gold: 1000, XP: 200, UnlockedPlots: 4}, 4)
		svc := newTestService(repo)

		// ACT
		result, err := svc.Upgrade(ctx, player.ID)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, 5, result.UnlockedPlots)
		assert.Equal(t, 800, result.GoldSpent)
		assert.Equal(t, 200, result.GoldRemaining)
		assert.Equal(t, 1800, result.NextCost)

		updated, err := repo.GetPlayerByID(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 200, updated.Gold)
		assert.Equal(t, 5, updated.UnlockedPlots)

		plots, err := repo.GetPlots(ctx, player.ID)
		require.NoError(t, err)
		assert.Len(t, plots, 5)
	})

	t.Run("level gate checked before gold", func(t *testing.T) {
		// Rich but level 1: must fail on level, not gold.
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "bob", Gold: 1_000_000, XP: 0, UnlockedPlots: 4}, 4)
		svc := newTestService(repo)

		_, err := svc.Upgrade(ctx, player.ID)
		assert.ErrorIs(t, err, domain.ErrLevelTooLow)
	})

	t.Run("insufficient gold", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "carol", Gold: 799, XP: 200, UnlockedPlots: 4}, 4)
		svc := newTestService(repo)

		_, err := svc.Upgrade(ctx, player.ID)
		assert.ErrorIs(t, err, domain.ErrInsufficientGold)

		updated, err := repo.GetPlayerByID(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 799, updated.Gold, "failed upgrade must not touch gold")
		assert.Equal(t, 4, updated.UnlockedPlots)
	})

	t.Run("unknown player", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		svc := newTestService(repo)

		_, err := svc.Upgrade(ctx, "c2a7c7e6-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("sequential upgrades climb the table", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		// Level 11 flat curve, cap 9 plots. Plenty of gold.
		player := repo.Seed(domain.Player{Username: "dave", Gold: 100_000, XP: 1000, UnlockedPlots: 4}, 4)
		svc := newTestService(repo)

		for target := 5; target <= 9; target++ {
			result, err := svc.Upgrade(ctx, player.ID)
			require.NoError(t, err)
			assert.Equal(t, target, result.UnlockedPlots)
			assert.Equal(t, UpgradeCost(target+1), result.NextCost)
		}

		// Tenth plot needs level 13.
		_, err := svc.Upgrade(ctx, player.ID)
		assert.ErrorIs(t, err, domain.ErrLevelTooLow)
	})

	t.Run("final upgrade quotes no next cost", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		// Level 50 on the flat curve, the breakpoint for the last plot.
		player := repo.Seed(domain.Player{Username: "hank", Gold: 88_200, XP: 4900, UnlockedPlots: MaxPlots - 1}, MaxPlots-1)
		svc := newTestService(repo)

		result, err := svc.Upgrade(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, MaxPlots, result.UnlockedPlots)
		assert.Equal(t, 88_200, result.GoldSpent)
		assert.Equal(t, 0, result.NextCost)
	})
}

func TestGetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("quote for affordable upgrade", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "erin", Gold: 1000, XP: 200, UnlockedPlots: 4}, 4)
		svc := newTestService(repo)

		quote, err := svc.GetQuote(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, quote.NextPlot)
		assert.Equal(t, 800, quote.Cost)
		assert.Equal(t, 3, quote.RequiredLevel)
		assert.True(t, quote.Available)
		assert.False(t, quote.AtMax)
	})

	t.Run("quote unavailable below required level", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "frank", Gold: 1000, XP: 0, UnlockedPlots: 4}, 4)
		svc := newTestService(repo)

		quote, err := svc.GetQuote(ctx, player.ID)
		require.NoError(t, err)
		assert.False(t, quote.Available)
	})

	t.Run("at max plots", func(t *testing.T) {
		repo := repositorytest.NewFakePlayer()
		player := repo.Seed(domain.Player{Username: "gina", Gold: 0, XP: 0, UnlockedPlots: MaxPlots}, MaxPlots)
		svc := newTestService(repo)

		quote, err := svc.GetQuote(ctx, player.ID)
		require.NoError(t, err)
		assert.True(t, quote.AtMax)
	})
}
