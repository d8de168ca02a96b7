package loot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/domain"
)

type serviceFixture struct {
	svc        Service
	provider   *fakeProvider
	resolver   *fakeResolver
	containers *fakeContainers
	placer     *fakePlacer
	notifier   *recordingNotifier
}

func newFixture(sources ...CatalogSource) *serviceFixture {
	f := &serviceFixture{
		provider:   &fakeProvider{sources: sources},
		resolver:   &fakeResolver{prices: map[string]float64{}},
		containers: &fakeContainers{},
		placer:     &fakePlacer{},
		notifier:   &recordingNotifier{},
	}
	f.svc = NewService(f.provider, f.resolver, f.containers, f.placer, seeded(99))
	return f
}

func (f *serviceFixture) host(scene string, pos *domain.Position) domain.HostContext {
	return domain.HostContext{ActiveScene: scene, SelectedPosition: pos, Notifier: f.notifier}
}

func equipmentPack() *fakeSource {
	return &fakeSource{
		name: "pf2e.equipment-srd",
		entries: []domain.CatalogEntry{
			{ID: "rope", Name: "Rope", Category: domain.CategoryEquipment},
			{ID: "potion", Name: "Minor Healing Potion", Category: domain.CategoryConsumable, Rarity: domain.RarityCommon},
			{ID: "gem", Name: "Moonstone", Category: domain.CategoryTreasure, Rarity: domain.RarityUncommon},
			{ID: "sword", Name: "Longsword", Category: domain.CategoryWeapon, Rarity: domain.RarityCommon},
			{ID: "crown", Name: "Crown of the Kobold King", Category: domain.CategoryTreasure, Rarity: domain.RarityUnique},
		},
	}
}

func TestGenerate_CreatesContainerAndPlacesToken(t *testing.T) {
	f := newFixture(equipmentPack())
	f.resolver.prices = map[string]float64{"rope": 0.1, "potion": 4}
	pos := domain.Position{X: 320, Y: 640}

	gen, err := f.svc.Generate(context.Background(), f.host("scene-1", &pos), GenerateRequest{
		MaxValue: ptr(10.0),
		MaxItems: ptr(5),
		Rarities: []string{"common"},
	})

	require.NoError(t, err)
	require.NotNil(t, gen.Container)
	require.NotNil(t, gen.Token)

	require.Len(t, f.containers.created, 1)
	spec := f.containers.created[0]
	assert.Equal(t, domain.DefaultContainerName, spec.Name)
	assert.Equal(t, domain.ContainerTypeLoot, spec.Type)
	assert.Equal(t, domain.DefaultTokenName, spec.Token.Name)
	assert.Equal(t, domain.DefaultTokenImage, spec.Token.Img)

	// rope + potion, then 10 - 4.1 = 5.9 gp left as 59 sp
	require.Len(t, spec.Items, 3)
	coins := spec.Items[2]
	assert.Equal(t, "59 sp", coins.Name)
	assert.Equal(t, 59, coins.Quantity)
	assert.Equal(t, domain.CoinStackGroup, coins.StackGroup)

	require.Len(t, f.placer.placed, 1)
	assert.Equal(t, "scene-1", f.placer.placed[0].sceneID)
	assert.Equal(t, gen.Container.ID, f.placer.placed[0].containerID)
	assert.Equal(t, pos, f.placer.placed[0].at)

	assert.Equal(t, domain.Notification{Level: domain.NotifyInfo, Message: "Generated 3 loot items worth ≤ 10 gp"}, f.notifier.last())
}

func TestGenerate_DefaultsTokenPosition(t *testing.T) {
	f := newFixture(equipmentPack())

	_, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), DefaultRequest())

	require.NoError(t, err)
	require.Len(t, f.placer.placed, 1)
	assert.Equal(t, domain.Position{X: 100, Y: 100}, f.placer.placed[0].at)
}

func TestGenerate_RarityAndCategoryFilter(t *testing.T) {
	f := newFixture(equipmentPack())

	result, err := f.svc.Preview(context.Background(), GenerateRequest{
		MaxValue: ptr(100.0),
		MaxItems: ptr(10),
		Rarities: []string{"uncommon", "unique"},
	})

	require.NoError(t, err)
	ids := map[string]bool{}
	for _, it := range result.Items {
		ids[it.ID] = true
	}
	assert.Equal(t, map[string]bool{"gem": true, "crown": true}, ids)
	assert.Empty(t, f.containers.created, "preview must not create containers")
}

func TestGenerate_NoCatalogSource(t *testing.T) {
	f := newFixture()

	gen, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), DefaultRequest())

	assert.ErrorIs(t, err, domain.ErrNoCatalogSource)
	assert.Nil(t, gen)
	assert.Empty(t, f.containers.created)
	assert.Equal(t, domain.Notification{Level: domain.NotifyError, Message: MsgNoCatalogSource}, f.notifier.last())
}

func TestGenerate_ProviderFailureIsNoCatalogSource(t *testing.T) {
	f := newFixture()
	f.provider.err = errors.New("packs unavailable")

	_, err := f.svc.Generate(context.Background(), f.host("", nil), DefaultRequest())

	assert.ErrorIs(t, err, domain.ErrNoCatalogSource)
}

func TestGenerate_StorageFailureIsNotNoCatalogSource(t *testing.T) {
	f := newFixture()
	f.provider.err = fmt.Errorf("%w: connection refused", domain.ErrDatabaseError)

	_, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), DefaultRequest())

	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.NotErrorIs(t, err, domain.ErrNoCatalogSource)
	assert.Equal(t, domain.Notification{Level: domain.NotifyError, Message: MsgGenerationFailure}, f.notifier.last())

	_, err = f.svc.Sources(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.NotErrorIs(t, err, domain.ErrNoCatalogSource)
}

func TestGenerate_NoCandidates(t *testing.T) {
	tests := []struct {
		name     string
		rarities []string
	}{
		{"no rarities selected", nil},
		{"rarity with no matching items", []string{"rare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(equipmentPack())

			gen, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), GenerateRequest{Rarities: tt.rarities})

			assert.ErrorIs(t, err, domain.ErrNoCandidates)
			assert.Nil(t, gen)
			assert.Empty(t, f.containers.created, "no container without candidates")
			assert.Empty(t, f.placer.placed)
			assert.Equal(t, domain.Notification{Level: domain.NotifyWarn, Message: MsgNoCandidates}, f.notifier.last())
		})
	}
}

func TestGenerate_FailingSourceIsSkipped(t *testing.T) {
	broken := &fakeSource{name: "pf2e.broken", err: errors.New("index corrupted")}
	f := newFixture(broken, equipmentPack())

	gen, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), DefaultRequest())

	require.NoError(t, err)
	for _, it := range gen.Result.Items {
		assert.Equal(t, "pf2e.equipment-srd", it.Pack)
	}
}

func TestGenerate_AllSourcesFailing(t *testing.T) {
	f := newFixture(&fakeSource{name: "a", err: errors.New("boom")}, &fakeSource{name: "b", err: errors.New("boom")})

	_, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), DefaultRequest())

	assert.ErrorIs(t, err, domain.ErrNoCandidates)
}

func TestGenerate_FillsPackFromSource(t *testing.T) {
	src := &fakeSource{name: "homebrew", entries: []domain.CatalogEntry{{ID: "x", Category: domain.CategoryTreasure}}}
	f := newFixture(src)

	result, err := f.svc.Preview(context.Background(), DefaultRequest())

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "homebrew", result.Items[0].Pack)
}

func TestGenerate_NoActiveScene(t *testing.T) {
	f := newFixture(equipmentPack())

	gen, err := f.svc.Generate(context.Background(), f.host("", nil), DefaultRequest())

	require.NoError(t, err)
	assert.Nil(t, gen.Token)
	assert.Len(t, f.containers.created, 1)
	assert.Empty(t, f.placer.placed)
	assert.Contains(t, f.notifier.messages, domain.Notification{Level: domain.NotifyWarn, Message: MsgNoActiveScene})
}

func TestGenerate_PlacementFailureKeepsContainer(t *testing.T) {
	f := newFixture(equipmentPack())
	f.placer.err = domain.ErrSceneNotFound

	gen, err := f.svc.Generate(context.Background(), f.host("scene-x", nil), DefaultRequest())

	require.NoError(t, err)
	assert.NotNil(t, gen.Container)
	assert.Nil(t, gen.Token)
	assert.Contains(t, f.notifier.messages, domain.Notification{Level: domain.NotifyWarn, Message: MsgPlacementFailed})
}

func TestGenerate_ContainerFailure(t *testing.T) {
	f := newFixture(equipmentPack())
	f.containers.err = errors.New("disk full")

	gen, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), DefaultRequest())

	assert.Error(t, err)
	assert.Nil(t, gen)
	assert.Empty(t, f.placer.placed)
	assert.Equal(t, domain.NotifyError, f.notifier.last().Level)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	f := newFixture(equipmentPack())

	_, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), GenerateRequest{
		MaxValue: ptr(-5.0),
		Rarities: []string{"common"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.Generate(context.Background(), f.host("scene-1", nil), GenerateRequest{Rarities: []string{"legendary"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.containers.created)
}

func TestGenerate_CustomContainerName(t *testing.T) {
	f := newFixture(equipmentPack())
	req := DefaultRequest()
	req.ContainerName = "  Dragon Hoard "

	_, err := f.svc.Generate(context.Background(), f.host("scene-1", nil), req)

	require.NoError(t, err)
	assert.Equal(t, "Dragon Hoard", f.containers.created[0].Name)
}

func TestGenerateRequest_Budget(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b, err := DefaultRequest().Budget()
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxValueGP, b.MaxValue)
		assert.Equal(t, DefaultMaxItems, b.MaxItems)
		for _, r := range domain.AllRarities() {
			assert.True(t, b.AllowedRarities.Contains(r))
		}
	})

	t.Run("level derives value", func(t *testing.T) {
		b, err := GenerateRequest{Level: 3, PartySize: 4}.Budget()
		require.NoError(t, err)
		assert.Equal(t, 480.0, b.MaxValue)
	})

	t.Run("explicit value wins over level", func(t *testing.T) {
		b, err := GenerateRequest{MaxValue: ptr(12.0), Level: 10, PartySize: 4}.Budget()
		require.NoError(t, err)
		assert.Equal(t, 12.0, b.MaxValue)
	})

	t.Run("explicit zero items", func(t *testing.T) {
		b, err := GenerateRequest{MaxItems: ptr(0)}.Budget()
		require.NoError(t, err)
		assert.Zero(t, b.MaxItems)
		assert.Empty(t, b.AllowedRarities)
	})
}

func TestSources(t *testing.T) {
	f := newFixture(equipmentPack(), &fakeSource{name: "pf2e.broken", err: errors.New("boom")})

	summaries, err := f.svc.Sources(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, SourceSummary{Name: "pf2e.equipment-srd", Entries: 5, Lootable: 4}, summaries[0])
	assert.Equal(t, "pf2e.broken", summaries[1].Name)
	assert.Equal(t, "boom", summaries[1].Error)
}

func TestFormatGP(t *testing.T) {
	assert.Equal(t, "50", FormatGP(50))
	assert.Equal(t, "0", FormatGP(0))
	assert.Equal(t, "12.5", FormatGP(12.5))
	assert.Equal(t, "0.25", FormatGP(0.25))
	assert.Equal(t, "100", FormatGP(100))
}
