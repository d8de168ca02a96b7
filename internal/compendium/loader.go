package compendium

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/validation"
)

// Sentinel errors for pack loading
var (
	ErrDuplicateItemID   = errors.New("duplicate item id")
	ErrDuplicatePackName = errors.New("duplicate pack name")
)

// PackStore persists packs and remembers which file versions were synced.
type PackStore interface {
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error
	SyncPack(ctx context.Context, pack *Pack) (int, error)
	ListPackNames(ctx context.Context) ([]string, error)
	DeletePack(ctx context.Context, name string) error
}

// SyncResult summarizes a sync run
type SyncResult struct {
	PacksSynced  int      `json:"packs_synced"`
	PacksSkipped int      `json:"packs_skipped"`
	ItemsWritten int      `json:"items_written"`
	PacksRemoved int      `json:"packs_removed"`
	Synced       []string `json:"synced"`
	Removed      []string `json:"removed"`
}

// Loader reads pack files from disk and syncs them to a PackStore
type Loader interface {
	Load(path string) (*Pack, error)
	LoadDir(dir string) ([]*Pack, error)
	SyncToDatabase(ctx context.Context, packs []*Pack, store PackStore) (*SyncResult, error)
}

// fileInfo records where a pack came from, for change detection
type fileInfo struct {
	path    string
	hash    string
	modTime time.Time
}

type packLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a loader validating against PackSchemaPath
func NewLoader() Loader {
	return NewLoaderWithSchema(validation.NewSchemaValidator(), PackSchemaPath)
}

// NewLoaderWithSchema creates a loader with an explicit validator and schema
func NewLoaderWithSchema(v validation.SchemaValidator, schemaPath string) Loader {
	return &packLoader{schemaValidator: v, schemaPath: schemaPath}
}

// Load reads, schema-checks and validates one pack file
func (l *packLoader) Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadPackFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaFailed, path, err)
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf(ErrMsgParsePackFailed, err)
	}
	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadPackFailed, err)
	}
	sum := sha256.Sum256(data)
	pack.file = &fileInfo{path: path, hash: hex.EncodeToString(sum[:]), modTime: stat.ModTime().Truncate(ModTimePrecision)}
	logger.Debug(LogMsgPackLoaded, LogFieldPack, pack.Name, LogFieldPath, path, LogFieldItems, len(pack.Items))

	return &pack, nil
}

// LoadDir loads every pack file in dir, sorted by file name. Pack names must
// be unique across the directory.
func (l *packLoader) LoadDir(dir string) ([]*Pack, error) {
	paths, err := filepath.Glob(filepath.Join(dir, PackFilePattern))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPacksFailed, dir, err)
	}
	sort.Strings(paths)

	packs := make([]*Pack, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		pack, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[pack.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicatePackName, ErrDuplicatePackName, pack.Name, prev, path)
		}
		seen[pack.Name] = path
		packs = append(packs, pack)
	}
	return packs, nil
}

// SyncToDatabase writes every changed pack to the store. A pack whose file
// hash and mod time match the last sync is skipped. packs is the complete
// set: stored packs missing from it are deleted.
func (l *packLoader) SyncToDatabase(ctx context.Context, packs []*Pack, store PackStore) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{Synced: []string{}, Removed: []string{}}

	for _, pack := range packs {
		if !hasPackChanged(ctx, store, pack) {
			log.Info(LogMsgPackUnchanged, LogFieldPack, pack.Name)
			result.PacksSkipped++
			continue
		}

		written, err := store.SyncPack(ctx, pack)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertPackFailed, pack.Name, err)
		}
		result.PacksSynced++
		result.ItemsWritten += written
		result.Synced = append(result.Synced, pack.Name)
		log.Info(LogMsgPackSynced, LogFieldPack, pack.Name, LogFieldItems, written)

		if pack.file == nil {
			continue
		}
		if err := store.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
			ConfigName:   SyncConfigName(pack.Name),
			LastSyncTime: time.Now(),
			FileHash:     pack.file.hash,
			FileModTime:  pack.file.modTime,
		}); err != nil {
			log.Warn(LogMsgUpdateMetadataFail, LogFieldPack, pack.Name, LogFieldError, err)
		}
	}

	if err := prunePacks(ctx, store, packs, result); err != nil {
		return nil, err
	}
	return result, nil
}

// prunePacks deletes stored packs that no longer have a file.
func prunePacks(ctx context.Context, store PackStore, packs []*Pack, result *SyncResult) error {
	stored, err := store.ListPackNames(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgListStoredFailed, err)
	}

	present := make(map[string]bool, len(packs))
	for _, p := range packs {
		present[p.Name] = true
	}
	for _, name := range stored {
		if present[name] {
			continue
		}
		if err := store.DeletePack(ctx, name); err != nil {
			return fmt.Errorf(ErrMsgDeletePackFailed, name, err)
		}
		result.PacksRemoved++
		result.Removed = append(result.Removed, name)
		logger.FromContext(ctx).Info(LogMsgPackRemoved, LogFieldPack, name)
	}
	return nil
}

// hasPackChanged treats packs without file info or sync history as changed.
func hasPackChanged(ctx context.Context, store PackStore, pack *Pack) bool {
	if pack.file == nil {
		return true
	}
	meta, err := store.GetSyncMetadata(ctx, SyncConfigName(pack.Name))
	if err != nil || meta == nil {
		return true
	}
	// Stored timestamps may be coarser than the filesystem's
	return meta.FileHash != pack.file.hash ||
		!meta.FileModTime.Truncate(ModTimePrecision).Equal(pack.file.modTime.Truncate(ModTimePrecision))
}

// SyncConfigName is the sync metadata key of a pack
func SyncConfigName(packName string) string {
	return "compendium:" + packName
}
