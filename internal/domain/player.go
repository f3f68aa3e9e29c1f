package domain

import "time"

// Player represents a registered player account.
// Level is always derived from XP via the active progression curve and is
// never stored alongside the player row.
type Player struct {
	ID            string    `json:"player_id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	Gold          int       `json:"gold"`
	XP            int64     `json:"xp"`
	UnlockedPlots int       `json:"unlocked_plots"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
