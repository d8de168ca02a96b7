package compendium

import "time"

// Pack file locations
const (
	// PackSchemaPath is the JSON schema every pack file must satisfy
	PackSchemaPath = "configs/schemas/compendium.schema.json"

	// PackFilePattern selects pack files inside a compendium directory
	PackFilePattern = "*.json"

	// DocumentTypeItem is the only pack document type that holds loot
	DocumentTypeItem = "Item"

	// DefaultGameSystem is the game system packs must belong to
	DefaultGameSystem = "pf2e"

	// ModTimePrecision matches the resolution of a postgres timestamptz
	ModTimePrecision = time.Microsecond
)

// Resolver cache defaults
const (
	DefaultCacheSize = 2048
	CacheKeySep      = "/"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadPackFailed     = "failed to read compendium pack: %w"
	ErrMsgParsePackFailed    = "failed to parse compendium pack: %w"
	ErrMsgListPacksFailed    = "failed to list compendium packs in %s: %w"
	ErrMsgUpsertPackFailed   = "failed to upsert pack '%s': %w"
	ErrMsgListStoredFailed   = "failed to list stored packs: %w"
	ErrMsgDeletePackFailed   = "failed to delete removed pack '%s': %w"
	ErrFmtSchemaFailed       = "schema validation failed for %s: %w"
	ErrMsgPackNil            = "pack is nil"
	ErrMsgPackNameEmpty      = "pack has empty name"
	ErrFmtItemIDEmpty        = "%w: pack '%s' item at index %d has empty id"
	ErrFmtItemNameEmpty      = "%w: pack '%s' item '%s' has empty name"
	ErrFmtItemNegativeLevel  = "%w: pack '%s' item '%s' has negative level"
	ErrFmtDuplicateItemID    = "%w: pack '%s' item '%s'"
	ErrFmtDuplicatePackName  = "%w: '%s' defined in %s and %s"
)

// ==================== Log Messages ====================

const (
	LogMsgPackLoaded         = "Compendium pack loaded"
	LogMsgPackSkipped        = "Compendium pack ignored"
	LogMsgPackUnchanged      = "Compendium pack unchanged, skipping sync"
	LogMsgPackSynced         = "Compendium pack synced"
	LogMsgPackRemoved        = "Compendium pack removed, file no longer present"
	LogMsgUpdateMetadataFail = "Failed to update compendium sync metadata"
	LogMsgResolverCacheEvict = "Item resolver cache invalidated"
)

const (
	LogFieldPack    = "pack"
	LogFieldPath    = "path"
	LogFieldItems   = "items"
	LogFieldSystem  = "system"
	LogFieldDocType = "document_type"
	LogFieldError   = "error"
	LogFieldEvicted = "evicted"
)
