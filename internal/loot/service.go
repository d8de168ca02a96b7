package loot

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/metrics"
)

// SourceSummary describes one compendium and how many lootable entries it holds.
type SourceSummary struct {
	Name     string `json:"name"`
	Entries  int    `json:"entries"`
	Lootable int    `json:"lootable"`
	Error    string `json:"error,omitempty"`
}

// Service defines the loot generation interface
type Service interface {
	// Generate selects loot, creates a container for it and places its token.
	Generate(ctx context.Context, host domain.HostContext, req GenerateRequest) (*domain.Generation, error)
	// Preview selects loot without creating anything.
	Preview(ctx context.Context, req GenerateRequest) (*domain.LootResult, error)
	// Budget returns the party gold budget for a level.
	Budget(level, partySize int) float64
	// Sources summarizes the available compendiums.
	Sources(ctx context.Context) ([]SourceSummary, error)
}

type service struct {
	catalog    CatalogProvider
	selector   *Selector
	containers ContainerStore
	placer     TokenPlacer
}

// NewService creates a new loot service. A nil rng seeds a random one.
func NewService(catalog CatalogProvider, resolver ItemResolver, containers ContainerStore, placer TokenPlacer, rng *rand.Rand) Service {
	return &service{
		catalog:    catalog,
		selector:   NewSelector(resolver, rng),
		containers: containers,
		placer:     placer,
	}
}

func (s *service) Generate(ctx context.Context, host domain.HostContext, req GenerateRequest) (*domain.Generation, error) {
	log := logger.FromContext(ctx)

	result, budget, err := s.selectLoot(ctx, req)
	if err != nil {
		s.reportFailure(ctx, host, err)
		return nil, err
	}

	spec := domain.ContainerSpec{
		Name:  req.ContainerNameOrDefault(),
		Type:  domain.ContainerTypeLoot,
		Items: result.ContainerItems(),
		Token: domain.TokenPrototype{
			Name:        domain.DefaultTokenName,
			Img:         domain.DefaultTokenImage,
			Disposition: domain.DispositionNeutral,
		},
	}

	container, err := s.containers.CreateContainer(ctx, spec)
	if err != nil {
		log.Error(LogMsgContainerFailed, LogFieldError, err)
		metrics.LootGenerationsTotal.WithLabelValues(OutcomeContainerError).Inc()
		host.Notify(ctx, domain.NotifyError, MsgContainerFailed)
		return nil, fmt.Errorf("failed to create loot container: %w", err)
	}
	log.Info(LogMsgContainerCreated, LogFieldContainer, container.ID, LogFieldSelected, result.Count())

	gen := &domain.Generation{Container: container, Result: result}

	if host.ActiveScene == "" {
		host.Notify(ctx, domain.NotifyWarn, MsgNoActiveScene)
	} else {
		token, err := s.placer.PlaceToken(ctx, host.ActiveScene, container.ID, host.PlacementPosition())
		if err != nil {
			// The container already exists, so the run still counts.
			log.Warn(LogMsgPlacementFailed, LogFieldContainer, container.ID, LogFieldScene, host.ActiveScene, LogFieldError, err)
			host.Notify(ctx, domain.NotifyWarn, MsgPlacementFailed)
		} else {
			log.Info(LogMsgTokenPlaced, LogFieldContainer, container.ID, LogFieldScene, token.SceneID)
			gen.Token = token
		}
	}

	metrics.LootGenerationsTotal.WithLabelValues(OutcomeSuccess).Inc()
	metrics.LootItemsSelected.Add(float64(len(result.Items)))
	metrics.LootValueSelected.Observe(result.TotalValue)

	host.Notify(ctx, domain.NotifyInfo, fmt.Sprintf(MsgGeneratedFormat, result.Count(), FormatGP(budget.MaxValue)))
	return gen, nil
}

func (s *service) Preview(ctx context.Context, req GenerateRequest) (*domain.LootResult, error) {
	result, _, err := s.selectLoot(ctx, req)
	return result, err
}

func (s *service) Budget(level, partySize int) float64 {
	return PartyBudget(level, partySize)
}

func (s *service) Sources(ctx context.Context) ([]SourceSummary, error) {
	sources, err := s.listSources(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]SourceSummary, 0, len(sources))
	for _, src := range sources {
		summary := SourceSummary{Name: src.Name()}
		entries, err := src.Index(ctx)
		if err != nil {
			summary.Error = err.Error()
			summaries = append(summaries, summary)
			continue
		}
		summary.Entries = len(entries)
		for _, e := range entries {
			if e.Category.IsLootable() {
				summary.Lootable++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// selectLoot resolves the budget, gathers candidates and runs the selector.
func (s *service) selectLoot(ctx context.Context, req GenerateRequest) (*domain.LootResult, domain.Budget, error) {
	log := logger.FromContext(ctx)

	budget, err := req.Budget()
	if err != nil {
		return nil, domain.Budget{}, err
	}

	candidates, err := s.gatherCandidates(ctx, budget.AllowedRarities)
	if err != nil {
		return nil, budget, err
	}
	log.Debug(LogMsgCandidatesGathered, LogFieldCandidates, len(candidates))

	result, err := s.selector.Select(ctx, candidates, budget)
	if err != nil {
		return nil, budget, err
	}

	log.Info(LogMsgLootSelected,
		LogFieldSelected, len(result.Items),
		LogFieldTotalValue, result.TotalValue,
		LogFieldMaxValue, budget.MaxValue)
	return result, budget, nil
}

// gatherCandidates indexes every source and keeps lootable entries whose
// rarity is allowed. A source that fails to index is logged and skipped.
func (s *service) gatherCandidates(ctx context.Context, allowed domain.RaritySet) ([]domain.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	sources, err := s.listSources(ctx)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, domain.ErrNoCatalogSource
	}

	var candidates []domain.CatalogEntry
	for _, src := range sources {
		entries, err := src.Index(ctx)
		if err != nil {
			log.Warn(LogMsgCatalogQueryFailed,
				LogFieldSource, src.Name(),
				LogFieldError, fmt.Errorf("%w: %w", domain.ErrCatalogQueryFailed, err))
			metrics.CatalogQueryFailures.WithLabelValues(src.Name()).Inc()
			continue
		}

		for _, e := range entries {
			if !Matches(e, allowed) {
				continue
			}
			if e.Pack == "" {
				e.Pack = src.Name()
			}
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		return nil, domain.ErrNoCandidates
	}
	return candidates, nil
}

// Matches reports whether an entry is lootable and of an allowed rarity.
func Matches(e domain.CatalogEntry, allowed domain.RaritySet) bool {
	return e.Category.IsLootable() && allowed.Contains(e.Rarity)
}

// reportFailure turns a selection error into an operator message.
// listSources keeps storage failures distinct from a provider that has no
// compendiums to offer.
func (s *service) listSources(ctx context.Context) ([]CatalogSource, error) {
	sources, err := s.catalog.Sources(ctx)
	switch {
	case err == nil:
		return sources, nil
	case errors.Is(err, domain.ErrDatabaseError), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("failed to list compendiums: %w", err)
	default:
		return nil, fmt.Errorf("%w: %w", domain.ErrNoCatalogSource, err)
	}
}

func (s *service) reportFailure(ctx context.Context, host domain.HostContext, err error) {
	switch {
	case errors.Is(err, domain.ErrNoCatalogSource):
		metrics.LootGenerationsTotal.WithLabelValues(OutcomeNoCatalog).Inc()
		host.Notify(ctx, domain.NotifyError, MsgNoCatalogSource)
	case errors.Is(err, domain.ErrNoCandidates):
		metrics.LootGenerationsTotal.WithLabelValues(OutcomeNoCandidates).Inc()
		host.Notify(ctx, domain.NotifyWarn, MsgNoCandidates)
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.LootGenerationsTotal.WithLabelValues(OutcomeInvalidBudget).Inc()
		host.Notify(ctx, domain.NotifyError, fmt.Sprintf(MsgInvalidBudget, err))
	default:
		metrics.LootGenerationsTotal.WithLabelValues(OutcomeError).Inc()
		logger.FromContext(ctx).Error(MsgGenerationFailure, LogFieldError, err)
		host.Notify(ctx, domain.NotifyError, MsgGenerationFailure)
	}
}
