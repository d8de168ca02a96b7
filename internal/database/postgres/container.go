package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/database/generated"
	"github.com/osse101/LootForge_Go/internal/domain"
)

// ContainerRepository persists loot containers and the tokens placed for them
type ContainerRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewContainerRepository creates a new ContainerRepository
func NewContainerRepository(pool *pgxpool.Pool) *ContainerRepository {
	return &ContainerRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// CreateContainer stores the container and its items atomically
func (r *ContainerRepository) CreateContainer(ctx context.Context, spec domain.ContainerSpec) (*domain.Container, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return nil, err
	}
	defer SafeRollback(ctx, h.tx)

	row, err := h.q.CreateLootContainer(ctx, generated.CreateLootContainerParams{
		ContainerName:    spec.Name,
		ContainerType:    spec.Type,
		TokenName:        spec.Token.Name,
		TokenImg:         spec.Token.Img,
		TokenDisposition: int32Of(spec.Token.Disposition),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	for slot, it := range spec.Items {
		if err := h.q.InsertLootContainerItem(ctx, generated.InsertLootContainerItemParams{
			ContainerID:  row.ContainerID,
			Slot:         int32Of(slot),
			ItemName:     it.Name,
			ItemType:     string(it.Type),
			Rarity:       string(domain.RarityOrDefault(it.Rarity)),
			Quantity:     int32Of(max(it.Quantity, 1)),
			PriceGp:      priceToFloat8(it.Price),
			Denomination: it.Denomination,
			StackGroup:   it.StackGroup,
			Img:          it.Img,
			SourcePack:   it.SourcePack,
			SourceID:     it.SourceID,
		}); err != nil {
			return nil, fmt.Errorf("failed to insert container item %d: %w", slot, err)
		}
	}

	if err := h.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}

	return &domain.Container{
		ID:        row.ContainerID.String(),
		Name:      spec.Name,
		Type:      spec.Type,
		Items:     append([]domain.ContainerItem(nil), spec.Items...),
		Token:     spec.Token,
		CreatedAt: row.CreatedAt.Time,
	}, nil
}

// GetContainer reads a container back with its items in slot order
func (r *ContainerRepository) GetContainer(ctx context.Context, id string) (*domain.Container, error) {
	containerID, err := parseContainerUUID(id)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetLootContainer(ctx, containerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to get container: %w", domain.ErrDatabaseError, err)
	}

	rows, err := r.q.ListLootContainerItems(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list container items: %w", domain.ErrDatabaseError, err)
	}

	items := make([]domain.ContainerItem, 0, len(rows))
	for _, it := range rows {
		items = append(items, domain.ContainerItem{
			Name:         it.ItemName,
			Type:         domain.Category(it.ItemType),
			Rarity:       domain.Rarity(it.Rarity),
			Quantity:     int(it.Quantity),
			Price:        float8ToPrice(it.PriceGp),
			Denomination: it.Denomination,
			StackGroup:   it.StackGroup,
			Img:          it.Img,
			SourcePack:   it.SourcePack,
			SourceID:     it.SourceID,
		})
	}

	return &domain.Container{
		ID:   row.ContainerID.String(),
		Name: row.ContainerName,
		Type: row.ContainerType,
		Token: domain.TokenPrototype{
			Name:        row.TokenName,
			Img:         row.TokenImg,
			Disposition: int(row.TokenDisposition),
		},
		Items:     items,
		CreatedAt: row.CreatedAt.Time,
	}, nil
}

// UpsertScene registers a scene tokens can be placed on
func (r *ContainerRepository) UpsertScene(ctx context.Context, id, name string) error {
	if name == "" {
		name = id
	}
	if err := r.q.UpsertScene(ctx, generated.UpsertSceneParams{SceneID: id, SceneName: name}); err != nil {
		return fmt.Errorf("failed to upsert scene: %w", err)
	}
	return nil
}

// PlaceToken places a container token on a registered scene
func (r *ContainerRepository) PlaceToken(ctx context.Context, sceneID, containerID string, at domain.Position) (*domain.Token, error) {
	cid, err := parseContainerUUID(containerID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.CreateSceneToken(ctx, generated.CreateSceneTokenParams{
		SceneID:     sceneID,
		ContainerID: cid,
		PosX:        int32Of(at.X),
		PosY:        int32Of(at.Y),
	})
	if err != nil {
		switch {
		case isForeignKeyViolation(err, ConstraintSceneTokensScene):
			return nil, fmt.Errorf("%w: %s", domain.ErrSceneNotFound, sceneID)
		case isForeignKeyViolation(err, ""):
			return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, containerID)
		}
		return nil, fmt.Errorf("%w: failed to place token: %w", domain.ErrDatabaseError, err)
	}

	return &domain.Token{
		ID:          row.TokenID.String(),
		SceneID:     sceneID,
		ContainerID: containerID,
		Position:    at,
		CreatedAt:   row.CreatedAt.Time,
	}, nil
}
