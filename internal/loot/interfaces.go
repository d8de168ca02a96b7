package loot

import (
	"context"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// CatalogSource is one queryable compendium.
type CatalogSource interface {
	Name() string
	Index(ctx context.Context) ([]domain.CatalogEntry, error)
}

// CatalogProvider lists the compendiums a generation may draw from.
type CatalogProvider interface {
	Sources(ctx context.Context) ([]CatalogSource, error)
}

// ItemResolver expands a catalog entry into its full record.
// A nil item or an error means the price is unresolved.
type ItemResolver interface {
	Resolve(ctx context.Context, entry domain.CatalogEntry) (*domain.ResolvedItem, error)
}

// ContainerStore creates persistent loot containers.
type ContainerStore interface {
	CreateContainer(ctx context.Context, spec domain.ContainerSpec) (*domain.Container, error)
}

// TokenPlacer puts a container's token on a scene.
type TokenPlacer interface {
	PlaceToken(ctx context.Context, sceneID, containerID string, at domain.Position) (*domain.Token, error)
}
