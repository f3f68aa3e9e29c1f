package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgPlayerNotFound     = "player not found"
	ErrMsgUsernameTaken      = "username already taken"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Catalog errors
	ErrMsgUnknownItem    = "unknown item"
	ErrMsgItemNotForSale = "item not sold by the market"

	// Plot errors
	ErrMsgPlotNotFound     = "plot not found"
	ErrMsgPlotNotOwned     = "plot does not belong to player"
	ErrMsgAlreadyPlanted   = "plot already planted"
	ErrMsgNothingToHarvest = "nothing to harvest"
	ErrMsgCropNotReady     = "crop not ready"

	// Resource errors
	ErrMsgInsufficientGold      = "not enough gold"
	ErrMsgInsufficientSeed      = "no matching seed in inventory"
	ErrMsgInsufficientInventory = "not enough items in inventory"

	// Land errors
	ErrMsgLevelTooLow = "level too low for more plots"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the service.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrPlayerNotFound     = errors.New(ErrMsgPlayerNotFound)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// Catalog errors
	ErrUnknownItem    = errors.New(ErrMsgUnknownItem)
	ErrItemNotForSale = errors.New(ErrMsgItemNotForSale)

	// Plot errors
	ErrPlotNotFound     = errors.New(ErrMsgPlotNotFound)
	ErrPlotNotOwned     = errors.New(ErrMsgPlotNotOwned)
	ErrAlreadyPlanted   = errors.New(ErrMsgAlreadyPlanted)
	ErrNothingToHarvest = errors.New(ErrMsgNothingToHarvest)
	ErrCropNotReady     = errors.New(ErrMsgCropNotReady)

	// Resource errors
	ErrInsufficientGold      = errors.New(ErrMsgInsufficientGold)
	ErrInsufficientSeed      = errors.New(ErrMsgInsufficientSeed)
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)

	// Land errors
	ErrLevelTooLow = errors.New(ErrMsgLevelTooLow)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
