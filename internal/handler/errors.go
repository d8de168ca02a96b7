package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgGenerateLootFailed    = "Failed to generate loot"
	ErrMsgPreviewLootFailed     = "Failed to preview loot"
	ErrMsgGetContainerFailed    = "Failed to get container"
	ErrMsgListCompendiumsFailed = "Failed to list compendiums"
	ErrMsgSyncCompendiumsFailed = "Failed to sync compendiums"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgNoCatalogError      = "No item compendiums found. Import or install compendiums first."
	ErrMsgNoCandidatesError   = "No matching loot items found with selected rarity filters."
	ErrMsgContainerNotFound   = "Container not found"
	ErrMsgSceneNotFound       = "Scene not found"
	ErrMsgCompendiumNotFound  = "Compendium not found"
	ErrMsgCatalogItemNotFound = "Catalog item not found"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseFailed = "database connection failed"
)
