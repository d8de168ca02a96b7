package loot

// ============================================================================
// Request Defaults
// ============================================================================

// DefaultMaxValueGP is the budget used when a caller gives neither a value
// nor a party level.
const DefaultMaxValueGP = 50.0

// DefaultMaxItems is the item cap used when a caller gives none.
const DefaultMaxItems = 5

// DefaultPartySize is assumed by budget lookups that name no party size.
const DefaultPartySize = 4

// ============================================================================
// Level Budget
// ============================================================================

// MaxTabulatedLevel is the last level with an explicit budget entry.
const MaxTabulatedLevel = 10

// BudgetPerLevelAboveTable is added for every level past MaxTabulatedLevel.
const BudgetPerLevelAboveTable = 250.0

// ============================================================================
// Operator Messages
// ============================================================================

const (
	MsgNoCatalogSource   = "No item compendiums found."
	MsgNoCandidates      = "No matching loot items found with selected rarity filters."
	MsgInvalidBudget     = "Invalid loot budget: %s"
	MsgContainerFailed   = "Failed to create loot chest."
	MsgNoActiveScene     = "No active scene, the loot chest was created without a token."
	MsgPlacementFailed   = "Loot chest created but its token could not be placed."
	MsgGeneratedFormat   = "Generated %d loot items worth ≤ %s gp"
	MsgGenerationFailure = "Loot generation failed."
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCatalogQueryFailed = "Could not load compendium"
	LogMsgPriceUnresolved    = "Item price unresolved, treating as zero"
	LogMsgCandidatesGathered = "Loot candidates gathered"
	LogMsgLootSelected       = "Loot selected"
	LogMsgContainerCreated   = "Loot container created"
	LogMsgTokenPlaced        = "Loot token placed"
	LogMsgPlacementFailed    = "Failed to place loot token"
	LogMsgContainerFailed    = "Failed to create loot container"
)

// Log field keys for structured logging
const (
	LogFieldSource     = "source"
	LogFieldEntry      = "entry"
	LogFieldCandidates = "candidates"
	LogFieldSelected   = "selected"
	LogFieldTotalValue = "total_value"
	LogFieldMaxValue   = "max_value"
	LogFieldContainer  = "container_id"
	LogFieldScene      = "scene_id"
	LogFieldError      = "error"
)

// Metric outcome labels
const (
	OutcomeSuccess        = "success"
	OutcomeNoCatalog      = "no_catalog"
	OutcomeNoCandidates   = "no_candidates"
	OutcomeInvalidBudget  = "invalid_budget"
	OutcomeContainerError = "container_error"
	OutcomeError          = "error"
)
