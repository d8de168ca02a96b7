package compendium

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/loot"
)

// Registry holds loaded packs in memory. It serves them as catalog sources
// and resolves entries to their full documents.
type Registry struct {
	system string

	mu     sync.RWMutex
	packs  []*Pack
	byName map[string]*Pack
}

// NewRegistry creates a registry that exposes packs of the given game system.
func NewRegistry(system string, packs ...*Pack) *Registry {
	if system == "" {
		system = DefaultGameSystem
	}
	r := &Registry{system: system, byName: make(map[string]*Pack)}
	for _, p := range packs {
		r.Add(p)
	}
	return r
}

// Add registers a pack, replacing any pack with the same name.
func (r *Registry) Add(p *Pack) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[p.Name]; ok {
		for i, existing := range r.packs {
			if existing.Name == p.Name {
				r.packs[i] = p
				break
			}
		}
	} else {
		r.packs = append(r.packs, p)
	}
	r.byName[p.Name] = p
}

// Packs returns every registered pack, in registration order.
func (r *Registry) Packs() []*Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Pack(nil), r.packs...)
}

// Sources returns the packs that hold items of the registry's game system.
func (r *Registry) Sources(ctx context.Context) ([]loot.CatalogSource, error) {
	log := logger.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]loot.CatalogSource, 0, len(r.packs))
	for _, p := range r.packs {
		if !p.Matches(r.system) {
			log.Debug(LogMsgPackSkipped,
				LogFieldPack, p.Name,
				LogFieldSystem, p.System,
				LogFieldDocType, p.DocumentType)
			continue
		}
		sources = append(sources, packSource{pack: p})
	}
	return sources, nil
}

// Resolve returns the full document behind an index entry.
func (r *Registry) Resolve(ctx context.Context, entry domain.CatalogEntry) (*domain.ResolvedItem, error) {
	r.mu.RLock()
	p, ok := r.byName[entry.Pack]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCompendiumNotFound, entry.Pack)
	}

	def, ok := p.Lookup(entry.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrCatalogItemNotFound, entry.Pack, entry.ID)
	}
	item := def.Resolved(p.Name)
	return &item, nil
}
