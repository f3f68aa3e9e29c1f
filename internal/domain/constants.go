package domain

// Registration defaults. Both are configurable via STARTING_GOLD and
// STARTING_PLOTS.
const (
	DefaultStartingGold  = 1000
	DefaultStartingPlots = 4
)

// SeedSuffix derives a seed item name from its crop name ("carrot" ->
// "carrot_seed"). Planting crop X consumes one X_seed.
const SeedSuffix = "_seed"

// MaxTransactionQuantity caps a single buy/sell request. Requests above the
// cap are clamped rather than rejected.
const MaxTransactionQuantity = 99

// SeedName returns the inventory item name of the seed for the given crop.
func SeedName(crop string) string {
	return crop + SeedSuffix
}
