package compendium

import (
	"context"
	"fmt"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Pack is one compendium file: a named collection of item documents.
type Pack struct {
	Name         string    `json:"name"`
	Label        string    `json:"label,omitempty"`
	System       string    `json:"system"`
	DocumentType string    `json:"document_type"`
	Items        []ItemDef `json:"items"`

	byID map[string]int
	file *fileInfo
}

// ItemDef is an item document as stored in a pack.
type ItemDef struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        domain.Category `json:"type"`
	Rarity      domain.Rarity   `json:"rarity,omitempty"`
	Level       int             `json:"level"`
	Price       domain.Price    `json:"price"`
	Description string          `json:"description,omitempty"`
	Img         string          `json:"img,omitempty"`
	Traits      []string        `json:"traits,omitempty"`
}

// Entry returns the index view of the document.
func (d ItemDef) Entry(pack string) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:       d.ID,
		Name:     d.Name,
		Category: d.Type,
		Rarity:   domain.RarityOrDefault(d.Rarity),
		Pack:     pack,
	}
}

// Resolved returns the full record of the document.
func (d ItemDef) Resolved(pack string) domain.ResolvedItem {
	return domain.ResolvedItem{
		CatalogEntry: d.Entry(pack),
		Level:        d.Level,
		Price:        d.Price,
		Quantity:     1,
		Description:  d.Description,
		Img:          d.Img,
		Traits:       append([]string(nil), d.Traits...),
	}
}

// Matches reports whether the pack holds items of the given game system.
func (p *Pack) Matches(system string) bool {
	return p.System == system && p.DocumentType == DocumentTypeItem
}

// Validate checks the invariants the schema cannot express and builds the
// id lookup.
func (p *Pack) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPackNil)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPackNameEmpty)
	}

	byID := make(map[string]int, len(p.Items))
	for i := range p.Items {
		it := &p.Items[i]
		switch {
		case it.ID == "":
			return fmt.Errorf(ErrFmtItemIDEmpty, domain.ErrInvalidInput, p.Name, i)
		case it.Name == "":
			return fmt.Errorf(ErrFmtItemNameEmpty, domain.ErrInvalidInput, p.Name, it.ID)
		case it.Level < 0:
			return fmt.Errorf(ErrFmtItemNegativeLevel, domain.ErrInvalidInput, p.Name, it.ID)
		}
		if _, dup := byID[it.ID]; dup {
			return fmt.Errorf(ErrFmtDuplicateItemID, ErrDuplicateItemID, p.Name, it.ID)
		}
		byID[it.ID] = i
	}
	p.byID = byID
	return nil
}

// Lookup finds an item document by id.
func (p *Pack) Lookup(id string) (ItemDef, bool) {
	if p.byID == nil {
		for _, it := range p.Items {
			if it.ID == id {
				return it, true
			}
		}
		return ItemDef{}, false
	}
	i, ok := p.byID[id]
	if !ok {
		return ItemDef{}, false
	}
	return p.Items[i], true
}

// Entries returns the pack index.
func (p *Pack) Entries() []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(p.Items))
	for _, it := range p.Items {
		entries = append(entries, it.Entry(p.Name))
	}
	return entries
}

// packSource exposes a loaded pack as a catalog source.
type packSource struct {
	pack *Pack
}

func (s packSource) Name() string { return s.pack.Name }

func (s packSource) Index(ctx context.Context) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.pack.Entries(), nil
}
