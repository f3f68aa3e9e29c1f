package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Handlers and tests should reference these constants to stay consistent.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundError     = "Player not found"
	ErrMsgUsernameTakenError      = "That username is already taken"
	ErrMsgInvalidCredentialsError = "Invalid username or password"
	ErrMsgUnknownItemError        = "Unknown item"
	ErrMsgItemNotForSaleError     = "That item is not sold by the market"
	ErrMsgPlotNotFoundError       = "Plot not found"
	ErrMsgPlotNotOwnedError       = "That plot is not yours"
	ErrMsgAlreadyPlantedError     = "That plot is already planted"
	ErrMsgNothingToHarvestError   = "Nothing is planted there"
	ErrMsgCropNotReadyError       = "The crop is not ready yet"
	ErrMsgNotEnoughGoldError      = "Not enough gold"
	ErrMsgNotEnoughSeedsError     = "Not enough seeds"
	ErrMsgNotEnoughItemsError     = "Not enough items"
	ErrMsgLevelTooLowError        = "Your level is too low"
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
)
