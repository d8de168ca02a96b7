package loot

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/osse101/LootForge_Go/internal/domain"
)

type fakeSource struct {
	name    string
	entries []domain.CatalogEntry
	err     error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Index(ctx context.Context) ([]domain.CatalogEntry, error) {
	return f.entries, f.err
}

type fakeProvider struct {
	sources []CatalogSource
	err     error
}

func (f *fakeProvider) Sources(ctx context.Context) ([]CatalogSource, error) {
	return f.sources, f.err
}

// fakeResolver prices entries by id. Ids missing from prices resolve to nil.
type fakeResolver struct {
	prices map[string]float64
	failOn map[string]bool
	calls  int
}

func (f *fakeResolver) Resolve(ctx context.Context, entry domain.CatalogEntry) (*domain.ResolvedItem, error) {
	f.calls++
	if f.failOn[entry.ID] {
		return nil, errors.New("document unavailable")
	}
	price, ok := f.prices[entry.ID]
	if !ok {
		return nil, nil
	}
	item := domain.ResolvedFromEntry(entry)
	item.Price = domain.PriceOf(price)
	return &item, nil
}

type fakeContainers struct {
	mu      sync.Mutex
	created []domain.ContainerSpec
	err     error
}

func (f *fakeContainers) CreateContainer(ctx context.Context, spec domain.ContainerSpec) (*domain.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, spec)
	return &domain.Container{
		ID:    fmt.Sprintf("container-%d", len(f.created)),
		Name:  spec.Name,
		Type:  spec.Type,
		Items: spec.Items,
		Token: spec.Token,
	}, nil
}

type placement struct {
	sceneID     string
	containerID string
	at          domain.Position
}

type fakePlacer struct {
	placed []placement
	err    error
}

func (f *fakePlacer) PlaceToken(ctx context.Context, sceneID, containerID string, at domain.Position) (*domain.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.placed = append(f.placed, placement{sceneID, containerID, at})
	return &domain.Token{ID: "token-1", SceneID: sceneID, ContainerID: containerID, Position: at}, nil
}

type recordingNotifier struct {
	messages []domain.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	r.messages = append(r.messages, domain.Notification{Level: level, Message: message})
}

func (r *recordingNotifier) last() domain.Notification {
	if len(r.messages) == 0 {
		return domain.Notification{}
	}
	return r.messages[len(r.messages)-1]
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func entry(id string, category domain.Category, rarity domain.Rarity) domain.CatalogEntry {
	return domain.CatalogEntry{ID: id, Name: "Item " + id, Category: category, Rarity: rarity, Pack: "pf2e.equipment-srd"}
}

func ptr[T any](v T) *T { return &v }
