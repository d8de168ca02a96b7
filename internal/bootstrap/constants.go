package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingLootForge   = "Starting LootForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingCompendiums    = "Syncing compendium packs from JSON config..."
	LogMsgCompendiumsSynced     = "Compendium packs synced successfully"
	LogMsgCompendiumsUnchanged  = "Compendium packs unchanged, sync skipped"
	LogMsgCompendiumDirMissing  = "Compendium directory not found, sync skipped"
	LogMsgSceneRegistered       = "Scene registered"
	ErrMsgFailedLoadCompendiums = "failed to load compendium packs"
	ErrMsgFailedSyncCompendiums = "failed to sync compendium packs to database"
	ErrMsgFailedRegisterScene   = "failed to register scene %q"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
