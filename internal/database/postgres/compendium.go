package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/compendium"
	"github.com/osse101/LootForge_Go/internal/database/generated"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/loot"
)

// CompendiumRepository stores compendium packs in PostgreSQL. It serves them
// as catalog sources and resolves their documents.
type CompendiumRepository struct {
	pool   *pgxpool.Pool
	q      *generated.Queries
	system string
}

// NewCompendiumRepository creates a repository exposing packs of one game system
func NewCompendiumRepository(pool *pgxpool.Pool, system string) *CompendiumRepository {
	if system == "" {
		system = compendium.DefaultGameSystem
	}
	return &CompendiumRepository{
		pool:   pool,
		q:      generated.New(pool),
		system: system,
	}
}

// Sources lists the stored item packs of the configured game system
func (r *CompendiumRepository) Sources(ctx context.Context) ([]loot.CatalogSource, error) {
	rows, err := r.q.ListCompendiumPacks(ctx, generated.ListCompendiumPacksParams{
		GameSystem:   r.system,
		DocumentType: compendium.DocumentTypeItem,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list compendium packs: %w", domain.ErrDatabaseError, err)
	}

	sources := make([]loot.CatalogSource, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, &packSource{name: row.PackName, q: r.q})
	}
	return sources, nil
}

// Resolve loads the stored document behind an index entry
func (r *CompendiumRepository) Resolve(ctx context.Context, entry domain.CatalogEntry) (*domain.ResolvedItem, error) {
	row, err := r.q.GetCompendiumItem(ctx, generated.GetCompendiumItemParams{
		PackName: entry.Pack,
		ItemID:   entry.ID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrCatalogItemNotFound, entry.Pack, entry.ID)
		}
		return nil, fmt.Errorf("%w: failed to get compendium item: %w", domain.ErrDatabaseError, err)
	}

	return &domain.ResolvedItem{
		CatalogEntry: domain.CatalogEntry{
			ID:       row.ItemID,
			Name:     row.ItemName,
			Category: domain.Category(row.ItemType),
			Rarity:   domain.RarityOrDefault(domain.Rarity(row.Rarity)),
			Pack:     row.PackName,
		},
		Level:       int(row.ItemLevel),
		Price:       float8ToPrice(row.PriceGp),
		Quantity:    1,
		Description: row.Description,
		Img:         row.Img,
		Traits:      row.Traits,
	}, nil
}

// SyncPack replaces the stored contents of a pack in one transaction and
// returns the number of items written
func (r *CompendiumRepository) SyncPack(ctx context.Context, pack *compendium.Pack) (int, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return 0, err
	}
	defer SafeRollback(ctx, h.tx)

	if err := h.q.UpsertCompendiumPack(ctx, generated.UpsertCompendiumPackParams{
		PackName:     pack.Name,
		Label:        pack.Label,
		GameSystem:   pack.System,
		DocumentType: pack.DocumentType,
	}); err != nil {
		return 0, fmt.Errorf("failed to upsert pack: %w", err)
	}

	if err := h.q.DeleteCompendiumItems(ctx, pack.Name); err != nil {
		return 0, fmt.Errorf("failed to clear pack items: %w", err)
	}

	for _, it := range pack.Items {
		traits := it.Traits
		if traits == nil {
			traits = []string{}
		}
		if err := h.q.InsertCompendiumItem(ctx, generated.InsertCompendiumItemParams{
			PackName:    pack.Name,
			ItemID:      it.ID,
			ItemName:    it.Name,
			ItemType:    string(it.Type),
			Rarity:      string(domain.RarityOrDefault(it.Rarity)),
			ItemLevel:   int32Of(it.Level),
			PriceGp:     priceToFloat8(it.Price),
			Description: it.Description,
			Img:         it.Img,
			Traits:      traits,
		}); err != nil {
			return 0, fmt.Errorf("failed to insert item '%s': %w", it.ID, err)
		}
	}

	if err := h.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return len(pack.Items), nil
}

// ListPackNames returns every stored pack regardless of game system
func (r *CompendiumRepository) ListPackNames(ctx context.Context) ([]string, error) {
	names, err := r.q.ListStoredPackNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list stored packs: %w", domain.ErrDatabaseError, err)
	}
	return names, nil
}

// DeletePack removes a pack, its items and its sync record in one transaction
func (r *CompendiumRepository) DeletePack(ctx context.Context, name string) error {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, h.tx)

	if err := h.q.DeleteCompendiumPack(ctx, name); err != nil {
		return fmt.Errorf("failed to delete pack '%s': %w", name, err)
	}
	if err := h.q.DeleteSyncMetadata(ctx, compendium.SyncConfigName(name)); err != nil {
		return fmt.Errorf("failed to delete sync metadata of '%s': %w", name, err)
	}

	if err := h.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// GetSyncMetadata returns the last recorded sync of a config file
func (r *CompendiumRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	row, err := r.q.GetSyncMetadata(ctx, configName)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	return &domain.SyncMetadata{
		ConfigName:   row.ConfigName,
		LastSyncTime: row.LastSyncTime.Time,
		FileHash:     row.FileHash,
		FileModTime:  row.FileModTime.Time,
	}, nil
}

// UpsertSyncMetadata records a sync of a config file
func (r *CompendiumRepository) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	if err := r.q.UpsertSyncMetadata(ctx, generated.UpsertSyncMetadataParams{
		ConfigName:   meta.ConfigName,
		LastSyncTime: toTimestamptz(meta.LastSyncTime),
		FileHash:     meta.FileHash,
		FileModTime:  toTimestamptz(meta.FileModTime),
	}); err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}

// packSource indexes one stored pack
type packSource struct {
	name string
	q    *generated.Queries
}

func (s *packSource) Name() string { return s.name }

func (s *packSource) Index(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := s.q.ListCompendiumIndex(ctx, s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCatalogQueryFailed, s.name, err)
	}

	entries := make([]domain.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.CatalogEntry{
			ID:       row.ItemID,
			Name:     row.ItemName,
			Category: domain.Category(row.ItemType),
			Rarity:   domain.Rarity(row.Rarity),
			Pack:     s.name,
		})
	}
	return entries, nil
}
