package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRarity(t *testing.T) {
	tests := []struct {
		in      string
		want    Rarity
		wantErr bool
	}{
		{"common", RarityCommon, false},
		{"", RarityCommon, false},
		{" Uncommon ", RarityUncommon, false},
		{"RARE", RarityRare, false},
		{"unique", RarityUnique, false},
		{"legendary", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRarity(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRaritySet(t *testing.T) {
	set, err := ParseRaritySet([]string{"rare", "common", "rare"})
	require.NoError(t, err)

	assert.Len(t, set, 2)
	assert.True(t, set.Contains(RarityCommon))
	assert.True(t, set.Contains(""), "an untagged item is common")
	assert.False(t, set.Contains(RarityUnique))
	assert.Equal(t, []Rarity{RarityCommon, RarityRare}, set.Sorted())

	empty, err := ParseRaritySet(nil)
	require.NoError(t, err)
	assert.False(t, empty.Contains(RarityCommon))

	_, err = ParseRaritySet([]string{"common", "mythic"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRarity_Title(t *testing.T) {
	assert.Equal(t, "Uncommon", RarityUncommon.Title())
	assert.Equal(t, "Common", Rarity("").Title())
}

func TestCategory_IsLootable(t *testing.T) {
	for _, c := range LootableCategories() {
		assert.True(t, c.IsLootable(), c)
	}
	assert.False(t, CategoryWeapon.IsLootable())
	assert.False(t, CategoryArmor.IsLootable())
	assert.False(t, Category("spell").IsLootable())
}

func TestLootResult_ContainerItems(t *testing.T) {
	stub := NewCurrencyStub(125)
	result := LootResult{
		Items: []ResolvedItem{
			{CatalogEntry: CatalogEntry{ID: "a", Name: "Rope", Category: CategoryEquipment, Pack: "p"}, Price: PriceOf(0.1)},
		},
		Currency: &stub,
	}

	items := result.ContainerItems()

	require.Len(t, items, 2)
	assert.Equal(t, 2, result.Count())
	assert.Equal(t, 1, items[0].Quantity, "quantity defaults to one")
	assert.Equal(t, RarityCommon, items[0].Rarity)
	assert.Equal(t, "125 sp", items[1].Name)
	assert.Equal(t, CoinStackGroup, items[1].StackGroup)
	assert.Equal(t, CoinImage, items[1].Img)
}

func TestHostContext_PlacementPosition(t *testing.T) {
	assert.Equal(t, DefaultPosition, HostContext{}.PlacementPosition())
	assert.Equal(t, Position{X: 5, Y: 6}, HostContext{SelectedPosition: &Position{X: 5, Y: 6}}.PlacementPosition())
}
