package domain

import (
	"fmt"
	"math"
	"time"
)

// Loot constants shared by every trigger surface
const (
	// SilverPerGold converts the unspent gold remainder into coin stacks
	SilverPerGold = 10

	DenominationSilver = "sp"
	CoinStackGroup     = "coins"
	CoinImage          = "icons/commodities/currency/coins-assorted-mix-copper.webp"

	ContainerTypeLoot    = "loot"
	DefaultContainerName = "Loot Chest"
	DefaultTokenName     = "Loot"
	DefaultTokenImage    = "icons/svg/treasure.svg"

	// DispositionNeutral is the token disposition of a loot chest
	DispositionNeutral = 0
)

// CatalogEntry is an item reference as known to a compendium index.
type CatalogEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"type"`
	Rarity   Rarity   `json:"rarity,omitempty"`
	Pack     string   `json:"pack"`
}

// ResolvedItem is the full record behind a CatalogEntry.
type ResolvedItem struct {
	CatalogEntry
	Level       int      `json:"level"`
	Price       Price    `json:"price"`
	Quantity    int      `json:"quantity"`
	Description string   `json:"description,omitempty"`
	Img         string   `json:"img,omitempty"`
	Traits      []string `json:"traits,omitempty"`
}

// ResolvedFromEntry builds a record for an entry whose document could not be
// loaded. Its price is absent.
func ResolvedFromEntry(e CatalogEntry) ResolvedItem {
	e.Rarity = RarityOrDefault(e.Rarity)
	return ResolvedItem{CatalogEntry: e, Quantity: 1}
}

// Budget holds the caller-supplied selection constraints.
type Budget struct {
	MaxValue        float64
	MaxItems        int
	AllowedRarities RaritySet
}

// Validate rejects negative limits.
func (b Budget) Validate() error {
	if b.MaxValue < 0 || math.IsNaN(b.MaxValue) || math.IsInf(b.MaxValue, 0) {
		return fmt.Errorf("%w: max value must be a non-negative number", ErrInvalidInput)
	}
	if b.MaxItems < 0 {
		return fmt.Errorf("%w: max items must be non-negative", ErrInvalidInput)
	}
	return nil
}

// CurrencyStub is the synthesized coin stack for unspent budget.
type CurrencyStub struct {
	Name         string `json:"name"`
	Denomination string `json:"denomination"`
	Quantity     int    `json:"quantity"`
	StackGroup   string `json:"stack_group"`
	Img          string `json:"img"`
}

// NewCurrencyStub returns a stack of silver pieces.
func NewCurrencyStub(silver int) CurrencyStub {
	return CurrencyStub{
		Name:         fmt.Sprintf("%d %s", silver, DenominationSilver),
		Denomination: DenominationSilver,
		Quantity:     silver,
		StackGroup:   CoinStackGroup,
		Img:          CoinImage,
	}
}

// LootResult is the transient outcome of one selection run.
type LootResult struct {
	Items      []ResolvedItem `json:"items"`
	Currency   *CurrencyStub  `json:"currency,omitempty"`
	TotalValue float64        `json:"total_value"`
	MaxValue   float64        `json:"max_value"`
}

// Count is the number of container entries, the currency stub included.
func (r *LootResult) Count() int {
	n := len(r.Items)
	if r.Currency != nil {
		n++
	}
	return n
}

// ContainerItems flattens the result into the ordered container contents.
func (r *LootResult) ContainerItems() []ContainerItem {
	items := make([]ContainerItem, 0, r.Count())
	for _, it := range r.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, ContainerItem{
			Name:       it.Name,
			Type:       it.Category,
			Rarity:     RarityOrDefault(it.Rarity),
			Quantity:   qty,
			Price:      it.Price,
			Img:        it.Img,
			SourcePack: it.Pack,
			SourceID:   it.ID,
		})
	}
	if r.Currency != nil {
		items = append(items, ContainerItem{
			Name:         r.Currency.Name,
			Type:         CategoryTreasure,
			Rarity:       RarityCommon,
			Quantity:     r.Currency.Quantity,
			Denomination: r.Currency.Denomination,
			StackGroup:   r.Currency.StackGroup,
			Img:          r.Currency.Img,
		})
	}
	return items
}

// ContainerItem is one entry inside a created container.
type ContainerItem struct {
	Name         string   `json:"name"`
	Type         Category `json:"type"`
	Rarity       Rarity   `json:"rarity"`
	Quantity     int      `json:"quantity"`
	Price        Price    `json:"price"`
	Denomination string   `json:"denomination,omitempty"`
	StackGroup   string   `json:"stack_group,omitempty"`
	Img          string   `json:"img,omitempty"`
	SourcePack   string   `json:"source_pack,omitempty"`
	SourceID     string   `json:"source_id,omitempty"`
}

// TokenPrototype describes how the container is drawn when placed.
type TokenPrototype struct {
	Name        string `json:"name"`
	Img         string `json:"img"`
	Disposition int    `json:"disposition"`
}

// ContainerSpec is the input for container creation.
type ContainerSpec struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Items []ContainerItem `json:"items"`
	Token TokenPrototype  `json:"token"`
}

// Container is a persistent in-world loot holder.
type Container struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Items     []ContainerItem `json:"items"`
	Token     TokenPrototype  `json:"token"`
	CreatedAt time.Time       `json:"created_at"`
}

// Position is a point on a scene canvas.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DefaultPosition is used when no token is selected.
var DefaultPosition = Position{X: 100, Y: 100}

// Token is a placed visual for a container.
type Token struct {
	ID          string    `json:"id"`
	SceneID     string    `json:"scene_id"`
	ContainerID string    `json:"container_id"`
	Position    Position  `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// Generation is the complete output of one loot run.
type Generation struct {
	Container *Container  `json:"container"`
	Token     *Token      `json:"token,omitempty"`
	Result    *LootResult `json:"result"`
}
