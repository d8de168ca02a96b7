package domain

import "time"

// SyncMetadata records the last sync of a compendium pack file. A pack whose
// hash and mod time still match is not written again.
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
}
