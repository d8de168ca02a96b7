package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/compendium"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/domain"
)

const bundledPacks = "../../configs/compendiums"

type memoryPackStore struct {
	meta   map[string]*domain.SyncMetadata
	synced map[string]int
	err    error
}

func newMemoryPackStore() *memoryPackStore {
	return &memoryPackStore{meta: map[string]*domain.SyncMetadata{}, synced: map[string]int{}}
}

func (s *memoryPackStore) GetSyncMetadata(_ context.Context, name string) (*domain.SyncMetadata, error) {
	return s.meta[name], nil
}

func (s *memoryPackStore) UpsertSyncMetadata(_ context.Context, m *domain.SyncMetadata) error {
	s.meta[m.ConfigName] = m
	return nil
}

func (s *memoryPackStore) ListPackNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.synced))
	for name := range s.synced {
		names = append(names, name)
	}
	return names, nil
}

func (s *memoryPackStore) DeletePack(_ context.Context, name string) error {
	delete(s.synced, name)
	delete(s.meta, compendium.SyncConfigName(name))
	return nil
}

func (s *memoryPackStore) SyncPack(_ context.Context, p *compendium.Pack) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.synced[p.Name]++
	return len(p.Items), nil
}

type sceneRecorder struct {
	ids    []string
	failOn string
}

func (r *sceneRecorder) UpsertScene(_ context.Context, id, _ string) error {
	if id == r.failOn {
		return domain.ErrInvalidInput
	}
	r.ids = append(r.ids, id)
	return nil
}

func TestSyncCompendiums(t *testing.T) {
	ctx := context.Background()
	store := newMemoryPackStore()

	first, err := SyncCompendiums(ctx, store, bundledPacks)
	require.NoError(t, err)
	assert.Positive(t, first.PacksSynced)
	assert.Positive(t, first.ItemsWritten)

	second, err := SyncCompendiums(ctx, store, bundledPacks)
	require.NoError(t, err)
	assert.Zero(t, second.PacksSynced)
	assert.Equal(t, first.PacksSynced, second.PacksSkipped)
	for name, n := range store.synced {
		assert.Equal(t, 1, n, "pack %s synced twice", name)
	}
}

func TestSyncCompendiums_MissingDir(t *testing.T) {
	store := newMemoryPackStore()
	store.synced["pf2e.kept"] = 1

	result, err := SyncCompendiums(context.Background(), store, filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Zero(t, result.PacksSynced)
	assert.Empty(t, result.Removed)
	assert.Contains(t, store.synced, "pf2e.kept", "a missing directory removes nothing")
}

func TestSyncCompendiums_StoreFailure(t *testing.T) {
	store := newMemoryPackStore()
	store.err = errors.New("connection reset")

	_, err := SyncCompendiums(context.Background(), store, bundledPacks)
	assert.ErrorContains(t, err, ErrMsgFailedSyncCompendiums)
}

func TestSyncCompendiums_InvalidPack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name": "broken"}`), 0o644))

	_, err := SyncCompendiums(context.Background(), newMemoryPackStore(), dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadCompendiumRegistry(t *testing.T) {
	reg, err := LoadCompendiumRegistry(bundledPacks, "pf2e")
	require.NoError(t, err)

	sources, err := reg.Sources(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sources)
	for _, s := range sources {
		assert.NotEqual(t, "pf2e.spells-srd", s.Name(), "spell packs are not item sources")
	}
}

func TestSeedScenes(t *testing.T) {
	rec := &sceneRecorder{failOn: "bad"}

	require.NoError(t, SeedScenes(context.Background(), rec, []string{"tavern", "dungeon"}))
	assert.Equal(t, []string{"tavern", "dungeon"}, rec.ids)

	err := SeedScenes(context.Background(), rec, []string{"bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, `"bad"`)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	cfg := &config.Config{LogDir: dir, LogLevel: "debug", LogFormat: "json", Environment: "test", Version: "v1"}
	var stdout bytes.Buffer

	f, err := setupLogger(cfg, &stdout, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, filepath.Join(dir, "session_2026-01-02_03-04-05.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgStartingLootForge)
	assert.Contains(t, stdout.String(), `"service":"lootforge"`)

	written, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(written))
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
	assert.NotContains(t, names, "session_2026-01-03_00-00-00.log")
}

func TestCompendiumReloader_InvalidatesSyncedPacks(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	pack := `{"name": "pf2e.reload", "system": "pf2e", "document_type": "Item", "items": [{"id": "a", "name": "Gem", "type": "treasure", "price": 1}]}`
	path := filepath.Join(dir, "reload.json")
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o644))

	reg, err := LoadCompendiumRegistry(dir, "pf2e")
	require.NoError(t, err)
	cache := compendium.NewCachedResolver(reg, 8, time.Minute)
	_, err = cache.Resolve(ctx, domain.CatalogEntry{ID: "a", Pack: "pf2e.reload"})
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	reloader := &CompendiumReloader{Store: newMemoryPackStore(), Cache: cache, Dir: dir}

	result, err := reloader.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pf2e.reload"}, result.Synced)
	assert.Zero(t, cache.Len())

	_, err = cache.Resolve(ctx, domain.CatalogEntry{ID: "a", Pack: "pf2e.reload"})
	require.NoError(t, err)
	result, err = reloader.Sync(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Synced)
	assert.Equal(t, 1, cache.Len(), "unchanged packs keep their cache")
}

func TestCompendiumReloader_EvictsRemovedPacks(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.json")
	pack := `{"name": "pf2e.gone", "system": "pf2e", "document_type": "Item", "items": [{"id": "a", "name": "Gem", "type": "treasure", "price": 1}]}`
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o644))

	reg, err := LoadCompendiumRegistry(dir, "pf2e")
	require.NoError(t, err)
	cache := compendium.NewCachedResolver(reg, 8, time.Minute)
	store := newMemoryPackStore()
	reloader := &CompendiumReloader{Store: store, Cache: cache, Dir: dir}

	_, err = reloader.Sync(ctx)
	require.NoError(t, err)
	_, err = cache.Resolve(ctx, domain.CatalogEntry{ID: "a", Pack: "pf2e.gone"})
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, os.Remove(path))
	result, err := reloader.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"pf2e.gone"}, result.Removed)
	assert.NotContains(t, store.synced, "pf2e.gone")
	assert.Zero(t, cache.Len())
}
