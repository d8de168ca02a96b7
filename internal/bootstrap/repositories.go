package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/compendium"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/database/postgres"
	"github.com/osse101/LootForge_Go/internal/loot"
)

// Repositories holds the persistence layer used by the application.
type Repositories struct {
	Compendium *postgres.CompendiumRepository
	Containers *postgres.ContainerRepository
	// Resolver fronts Compendium with an expiring LRU cache
	Resolver *compendium.CachedResolver
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool, cfg *config.Config) *Repositories {
	compendiumRepo := postgres.NewCompendiumRepository(dbPool, cfg.GameSystem)
	return &Repositories{
		Compendium: compendiumRepo,
		Containers: postgres.NewContainerRepository(dbPool),
		Resolver:   compendium.NewCachedResolver(compendiumRepo, cfg.CacheSize, cfg.CacheTTL),
	}
}

// LootService wires the generation service to the repositories.
func (r *Repositories) LootService() loot.Service {
	return loot.NewService(r.Compendium, r.Resolver, r.Containers, r.Containers, nil)
}

// CompendiumReloader serves on-demand pack syncs from dir.
func (r *Repositories) CompendiumReloader(dir string) *CompendiumReloader {
	return &CompendiumReloader{Store: r.Compendium, Cache: r.Resolver, Dir: dir}
}
