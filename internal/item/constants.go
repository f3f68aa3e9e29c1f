package item

// Item configuration file names
const (
	ConfigFileName = "items.json"

	// ItemsSchemaPath is resolved relative to the repository root.
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
)

// Validation error message fragments (used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for validation error construction
const (
	ErrFmtItemAtIndexEmptyName  = "%w: item at index %d has empty name"
	ErrFmtItemEmptyDisplayName  = "%w: item '%s' has empty display_name"
	ErrFmtItemNegativeBuyPrice  = "%w: item '%s' has negative buy_price"
	ErrFmtItemNegativeSellPrice = "%w: item '%s' has negative sell_price"
	ErrFmtGrowthEmptyCrop       = "%w: item '%s' growth has empty crop"
	ErrFmtGrowthUnknownCrop     = "%w: item '%s' growth references undefined crop '%s'"
	ErrFmtGrowthBadSeconds      = "%w: item '%s' growth has grow_seconds < 1"
	ErrFmtGrowthBadStageCount   = "%w: item '%s' growth has stage_count < 1"
	ErrFmtGrowthBadYield        = "%w: item '%s' growth has yield < 1"
	ErrFmtGrowthNegativeXP      = "%w: item '%s' growth has negative xp_reward"
	ErrFmtGrowthBadSeedName     = "%w: item '%s' grows crop '%s' but is not named '%s'"
)
