package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willobee/FarmPatch_Go/internal/domain"
)

func TestGrant(t *testing.T) {
	curve := NewFlatCurve()

	t.Run("grant without level up", func(t *testing.T) {
		player := &domain.Player{XP: 10}

		result, err := Grant(curve, player, 50)
		require.NoError(t, err)

		assert.Equal(t, int64(60), player.XP)
		assert.Equal(t, int64(50), result.XPGained)
		assert.Equal(t, 1, result.PreviousLevel)
		assert.Equal(t, 1, result.NewLevel)
		assert.False(t, result.LeveledUp)
	})

	t.Run("grant crossing one level", func(t *testing.T) {
		player := &domain.Player{XP: 90}

		result, err := Grant(curve, player, 20)
		require.NoError(t, err)

		assert.Equal(t, 2, result.NewLevel)
		assert.True(t, result.LeveledUp)
	})

	t.Run("single grant crossing several levels", func(t *testing.T) {
		player := &domain.Player{XP: 0}

		result, err := Grant(curve, player, 350)
		require.NoError(t, err)

		assert.Equal(t, 1, result.PreviousLevel)
		assert.Equal(t, 4, result.NewLevel)
		assert.True(t, result.LeveledUp)
	})

	t.Run("zero amount is a no-op", func(t *testing.T) {
		player := &domain.Player{XP: 42}

		result, err := Grant(curve, player, 0)
		require.NoError(t, err)

		assert.Equal(t, int64(42), player.XP)
		assert.False(t, result.LeveledUp)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		player := &domain.Player{XP: 42}

		_, err := Grant(curve, player, -5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, int64(42), player.XP, "xp must be untouched on error")
	})
}
