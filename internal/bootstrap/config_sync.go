package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/LootForge_Go/internal/compendium"
)

// SceneRegistrar registers scenes tokens can be placed on.
type SceneRegistrar interface {
	UpsertScene(ctx context.Context, id, name string) error
}

// SyncCompendiums loads, validates, and syncs every pack in dir to the store.
// Packs whose file hash and mod time are unchanged since the last sync are
// skipped and stored packs whose file is gone are deleted. A missing
// directory is not an error and leaves the store untouched.
func SyncCompendiums(ctx context.Context, store compendium.PackStore, dir string) (*compendium.SyncResult, error) {
	slog.Info(LogMsgSyncingCompendiums, "dir", dir)

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgCompendiumDirMissing, "dir", dir)
		return &compendium.SyncResult{Synced: []string{}, Removed: []string{}}, nil
	}

	loader := compendium.NewLoader()
	packs, err := loader.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCompendiums, err)
	}

	result, err := loader.SyncToDatabase(ctx, packs, store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCompendiums, err)
	}

	if result.PacksSynced > 0 || result.PacksRemoved > 0 {
		slog.Info(LogMsgCompendiumsSynced,
			"synced", result.PacksSynced,
			"skipped", result.PacksSkipped,
			"removed", result.PacksRemoved,
			"items", result.ItemsWritten)
	} else {
		slog.Info(LogMsgCompendiumsUnchanged, "skipped", result.PacksSkipped)
	}

	return result, nil
}

// LoadCompendiumRegistry loads the packs in dir into an in-memory registry
// for the given game system.
func LoadCompendiumRegistry(dir, system string) (*compendium.Registry, error) {
	packs, err := compendium.NewLoader().LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCompendiums, err)
	}
	return compendium.NewRegistry(system, packs...), nil
}

// SeedScenes registers the configured scenes, using each id as its name.
func SeedScenes(ctx context.Context, registrar SceneRegistrar, scenes []string) error {
	for _, id := range scenes {
		if err := registrar.UpsertScene(ctx, id, id); err != nil {
			return fmt.Errorf(ErrMsgFailedRegisterScene+": %w", id, err)
		}
		slog.Debug(LogMsgSceneRegistered, "scene", id)
	}
	return nil
}

// CompendiumReloader re-syncs the pack directory on demand and evicts the
// cached documents of every pack that changed or was removed.
type CompendiumReloader struct {
	Store compendium.PackStore
	Cache *compendium.CachedResolver
	Dir   string
}

// Sync runs SyncCompendiums and invalidates the resolver cache per synced or
// removed pack.
func (r *CompendiumReloader) Sync(ctx context.Context) (*compendium.SyncResult, error) {
	result, err := SyncCompendiums(ctx, r.Store, r.Dir)
	if err != nil {
		return nil, err
	}
	if r.Cache != nil {
		for _, name := range result.Synced {
			r.Cache.InvalidatePack(ctx, name)
		}
		for _, name := range result.Removed {
			r.Cache.InvalidatePack(ctx, name)
		}
	}
	return result, nil
}
