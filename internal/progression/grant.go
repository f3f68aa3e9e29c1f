package progression

import (
	"fmt"

	"github.com/willobee/FarmPatch_Go/internal/domain"
)

// Result describes the outcome of an xp grant.
type Result struct {
	XPGained      int64 `json:"xp_gained"`
	PreviousLevel int   `json:"previous_level"`
	NewLevel      int   `json:"new_level"`
	LeveledUp     bool  `json:"leveled_up"`
}

// Grant adds xp to the player and reports any level change. The player is
// mutated in place, persisting is the caller's job. Negative amounts are
// rejected, a zero amount is a no-op.
func Grant(c Curve, player *domain.Player, amount int64) (Result, error) {
	if amount < 0 {
		return Result{}, fmt.Errorf("%w: xp amount must not be negative", domain.ErrInvalidInput)
	}

	before := LevelFor(c, player.XP)
	player.XP += amount
	after := LevelFor(c, player.XP)

	return Result{
		XPGained:      amount,
		PreviousLevel: before,
		NewLevel:      after,
		LeveledUp:     after > before,
	}, nil
}
