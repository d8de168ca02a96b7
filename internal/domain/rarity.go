package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the availability tag of an item, used as a selection filter.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityUnique   Rarity = "unique"
)

// AllRarities lists every rarity tag in ascending order of scarcity.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityUnique}
}

// ParseRarity normalizes a rarity tag. An empty tag is common.
func ParseRarity(s string) (Rarity, error) {
	switch r := Rarity(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RarityCommon, nil
	case RarityCommon, RarityUncommon, RarityRare, RarityUnique:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
	}
}

// RarityOrDefault returns the tag, or common when the tag is empty.
func RarityOrDefault(r Rarity) Rarity {
	if r == "" {
		return RarityCommon
	}
	return r
}

// Title returns the display form of the tag ("Uncommon").
func (r Rarity) Title() string {
	return cases.Title(language.English).String(string(RarityOrDefault(r)))
}

// Category is the item type as indexed by a compendium.
type Category string

const (
	CategoryEquipment  Category = "equipment"
	CategoryConsumable Category = "consumable"
	CategoryTreasure   Category = "treasure"
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
)

// LootableCategories are the only categories a loot chest is filled from.
func LootableCategories() []Category {
	return []Category{CategoryEquipment, CategoryConsumable, CategoryTreasure}
}

// IsLootable reports whether items of this category may be selected as loot.
func (c Category) IsLootable() bool {
	switch c {
	case CategoryEquipment, CategoryConsumable, CategoryTreasure:
		return true
	}
	return false
}

// RaritySet is a set of allowed rarity tags.
type RaritySet map[Rarity]struct{}

// NewRaritySet builds a set from the given tags.
func NewRaritySet(rarities ...Rarity) RaritySet {
	set := make(RaritySet, len(rarities))
	for _, r := range rarities {
		set[RarityOrDefault(r)] = struct{}{}
	}
	return set
}

// ParseRaritySet parses and deduplicates rarity tags.
func ParseRaritySet(tags []string) (RaritySet, error) {
	set := make(RaritySet, len(tags))
	for _, tag := range tags {
		r, err := ParseRarity(tag)
		if err != nil {
			return nil, err
		}
		set[r] = struct{}{}
	}
	return set, nil
}

// Contains reports whether the rarity (common when empty) is in the set.
func (s RaritySet) Contains(r Rarity) bool {
	_, ok := s[RarityOrDefault(r)]
	return ok
}

// Sorted returns the tags in scarcity order.
func (s RaritySet) Sorted() []Rarity {
	out := make([]Rarity, 0, len(s))
	for _, r := range AllRarities() {
		if _, ok := s[r]; ok {
			out = append(out, r)
		}
	}
	return out
}
