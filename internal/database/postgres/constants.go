package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Constraint names, as generated by PostgreSQL for the migrations
const (
	ConstraintSceneTokensScene = "scene_tokens_scene_id_fkey"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
