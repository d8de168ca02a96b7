package loot

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// Selector picks a random subset of catalog entries within a budget.
type Selector struct {
	resolver ItemResolver

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewSelector creates a selector. A nil rng is replaced by a randomly seeded one.
func NewSelector(resolver ItemResolver, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // Game logic randomness, not security critical
	}
	return &Selector{resolver: resolver, rng: rng}
}

// Select walks a shuffled copy of the catalog and keeps every entry whose
// price still fits the remaining budget, up to budget.MaxItems entries.
// An entry that does not fit is skipped and the walk continues, so cheaper
// entries later in the order can still be taken. Unspent budget becomes a
// trailing silver stub that does not count toward MaxItems.
//
// A zero MaxValue or MaxItems selects nothing, not even unpriced entries,
// and leaves no stub.
func (s *Selector) Select(ctx context.Context, catalog []domain.CatalogEntry, budget domain.Budget) (*domain.LootResult, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrNoCandidates
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	result := &domain.LootResult{
		Items:    make([]domain.ResolvedItem, 0, min(budget.MaxItems, len(catalog))),
		MaxValue: budget.MaxValue,
	}
	if budget.MaxValue == 0 || budget.MaxItems == 0 {
		return result, nil
	}

	for _, entry := range s.shuffle(catalog) {
		if len(result.Items) >= budget.MaxItems {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := s.resolve(ctx, entry)
		price := item.Price.OrZero()
		if result.TotalValue+price <= budget.MaxValue {
			result.Items = append(result.Items, item)
			result.TotalValue += price
		}
	}

	return s.withRemainder(result, budget), nil
}

// withRemainder attaches the silver stub for whatever budget is left.
func (s *Selector) withRemainder(result *domain.LootResult, budget domain.Budget) *domain.LootResult {
	if silver := RemainderInSilver(budget.MaxValue, result.TotalValue); silver > 0 {
		stub := domain.NewCurrencyStub(silver)
		result.Currency = &stub
	}
	return result
}

// RemainderInSilver converts the unspent gold into whole silver pieces.
func RemainderInSilver(maxValue, spent float64) int {
	return int(math.Round((maxValue - spent) * domain.SilverPerGold))
}

// shuffle returns a uniformly permuted copy of the catalog.
func (s *Selector) shuffle(catalog []domain.CatalogEntry) []domain.CatalogEntry {
	shuffled := make([]domain.CatalogEntry, len(catalog))
	copy(shuffled, catalog)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	return shuffled
}

// resolve loads the full record. A missing document keeps the entry with an
// absent price, which counts as zero.
func (s *Selector) resolve(ctx context.Context, entry domain.CatalogEntry) domain.ResolvedItem {
	if s.resolver == nil {
		return domain.ResolvedFromEntry(entry)
	}

	item, err := s.resolver.Resolve(ctx, entry)
	if err != nil || item == nil {
		logger.FromContext(ctx).Debug(LogMsgPriceUnresolved,
			LogFieldEntry, entry.ID,
			LogFieldSource, entry.Pack,
			LogFieldError, err)
		return domain.ResolvedFromEntry(entry)
	}

	resolved := *item
	if resolved.Pack == "" {
		resolved.Pack = entry.Pack
	}
	resolved.Rarity = domain.RarityOrDefault(resolved.Rarity)
	return resolved
}
