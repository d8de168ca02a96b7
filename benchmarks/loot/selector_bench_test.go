package loot_bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/host"
	"github.com/osse101/LootForge_Go/internal/loot"
)

// --- Stubs (zero-overhead collaborators for benchmarking) ---

type stubSource struct {
	entries []domain.CatalogEntry
}

func (s stubSource) Name() string { return "bench.pack" }
func (s stubSource) Index(ctx context.Context) ([]domain.CatalogEntry, error) {
	return s.entries, nil
}

type stubProvider struct {
	sources []loot.CatalogSource
}

func (p stubProvider) Sources(ctx context.Context) ([]loot.CatalogSource, error) {
	return p.sources, nil
}

type stubResolver struct{}

func (stubResolver) Resolve(ctx context.Context, e domain.CatalogEntry) (*domain.ResolvedItem, error) {
	item := domain.ResolvedFromEntry(e)
	item.Price = domain.PriceOf(float64(len(e.ID) % 7))
	return &item, nil
}

func catalog(n int) []domain.CatalogEntry {
	rarities := domain.AllRarities()
	categories := domain.LootableCategories()
	entries := make([]domain.CatalogEntry, n)
	for i := range entries {
		entries[i] = domain.CatalogEntry{
			ID:       fmt.Sprintf("item-%06d", i),
			Name:     fmt.Sprintf("Item %d", i),
			Category: categories[i%len(categories)],
			Rarity:   rarities[i%len(rarities)],
			Pack:     "bench.pack",
		}
	}
	return entries
}

func BenchmarkSelector_Select(b *testing.B) {
	budget := domain.Budget{
		MaxValue:        50,
		MaxItems:        5,
		AllowedRarities: domain.NewRaritySet(domain.AllRarities()...),
	}

	for _, size := range []int{100, 1000, 10000} {
		entries := catalog(size)
		b.Run(fmt.Sprintf("catalog=%d", size), func(b *testing.B) {
			sel := loot.NewSelector(stubResolver{}, rand.New(rand.NewPCG(1, 2)))
			ctx := context.Background()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sel.Select(ctx, entries, budget); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkService_Generate(b *testing.B) {
	provider := stubProvider{sources: []loot.CatalogSource{stubSource{entries: catalog(5000)}}}
	world := host.NewWorld("bench-scene")
	svc := loot.NewService(provider, stubResolver{}, world, world, rand.New(rand.NewPCG(3, 4)))
	hostCtx := domain.HostContext{ActiveScene: "bench-scene"}
	req := loot.DefaultRequest()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Generate(ctx, hostCtx, req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_GenerateParallel(b *testing.B) {
	provider := stubProvider{sources: []loot.CatalogSource{stubSource{entries: catalog(5000)}}}
	world := host.NewWorld("bench-scene")
	svc := loot.NewService(provider, stubResolver{}, world, world, nil)
	req := loot.DefaultRequest()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		hostCtx := domain.HostContext{ActiveScene: "bench-scene"}
		for pb.Next() {
			if _, err := svc.Generate(ctx, hostCtx, req); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
