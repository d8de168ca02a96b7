package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgNoCatalogSource     = "no item compendiums found"
	ErrMsgCatalogQueryFailed  = "compendium query failed"
	ErrMsgNoCandidates        = "no matching loot items found"
	ErrMsgCompendiumNotFound  = "compendium not found"
	ErrMsgCatalogItemNotFound = "catalog item not found"

	// Container errors
	ErrMsgContainerNotFound = "container not found"
	ErrMsgSceneNotFound     = "scene not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNoCatalogSource means no queryable compendium exists. Generation aborts.
	ErrNoCatalogSource = errors.New(ErrMsgNoCatalogSource)

	// ErrCatalogQueryFailed is per source. The source is skipped for that run.
	ErrCatalogQueryFailed = errors.New(ErrMsgCatalogQueryFailed)

	// ErrNoCandidates means nothing survived the category/rarity filter.
	// It is reported to the user and no container is created.
	ErrNoCandidates = errors.New(ErrMsgNoCandidates)

	ErrCompendiumNotFound  = errors.New(ErrMsgCompendiumNotFound)
	ErrCatalogItemNotFound = errors.New(ErrMsgCatalogItemNotFound)

	ErrContainerNotFound = errors.New(ErrMsgContainerNotFound)
	ErrSceneNotFound     = errors.New(ErrMsgSceneNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
