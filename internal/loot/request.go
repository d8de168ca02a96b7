package loot

import (
	"fmt"
	"strings"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// GenerateRequest is the confirmed input of a loot dialog, command or macro.
type GenerateRequest struct {
	// MaxValue is the budget in gold. When nil the budget comes from Level
	// and PartySize, or DefaultMaxValueGP when no level is given.
	MaxValue *float64
	// MaxItems caps the number of items. When nil DefaultMaxItems applies.
	MaxItems *int
	// Rarities are the allowed rarity tags. Empty allows nothing.
	Rarities      []string
	Level         int
	PartySize     int
	ContainerName string
}

// DefaultRequest mirrors the stock macro: 50 gp, 5 items, every rarity.
func DefaultRequest() GenerateRequest {
	rarities := make([]string, 0, len(domain.AllRarities()))
	for _, r := range domain.AllRarities() {
		rarities = append(rarities, string(r))
	}
	return GenerateRequest{Rarities: rarities}
}

// Budget resolves the request into selection constraints.
func (r GenerateRequest) Budget() (domain.Budget, error) {
	allowed, err := domain.ParseRaritySet(r.Rarities)
	if err != nil {
		return domain.Budget{}, err
	}

	budget := domain.Budget{
		MaxValue:        DefaultMaxValueGP,
		MaxItems:        DefaultMaxItems,
		AllowedRarities: allowed,
	}

	switch {
	case r.MaxValue != nil:
		budget.MaxValue = *r.MaxValue
	case r.Level > 0:
		budget.MaxValue = PartyBudget(r.Level, r.PartySize)
	}
	if r.MaxItems != nil {
		budget.MaxItems = *r.MaxItems
	}

	if err := budget.Validate(); err != nil {
		return domain.Budget{}, err
	}
	return budget, nil
}

// ContainerNameOrDefault returns the requested chest name or the stock one.
func (r GenerateRequest) ContainerNameOrDefault() string {
	if name := strings.TrimSpace(r.ContainerName); name != "" {
		return name
	}
	return domain.DefaultContainerName
}

// FormatGP renders a gold amount without trailing zeros.
func FormatGP(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
