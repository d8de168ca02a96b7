package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/loot"
	"github.com/osse101/LootForge_Go/mocks"
)

func newTestRouter(svc loot.Service, containers ContainerReader) http.Handler {
	h := NewLootHandler(svc, containers)
	r := chi.NewRouter()
	r.Post("/generate", h.HandleGenerate)
	r.Post("/preview", h.HandlePreview)
	r.Get("/budget", h.HandleBudget)
	r.Get("/containers/{id}", h.HandleGetContainer)
	r.Get("/compendiums", h.HandleListCompendiums)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func sampleGeneration() *domain.Generation {
	return &domain.Generation{
		Container: &domain.Container{ID: "c-1", Name: domain.DefaultContainerName, Type: domain.ContainerTypeLoot},
		Token:     &domain.Token{ID: "t-1", SceneID: "tavern", ContainerID: "c-1", Position: domain.Position{X: 5, Y: 6}},
		Result:    &domain.LootResult{MaxValue: 50},
	}
}

func TestHandleGenerate_Success(t *testing.T) {
	svc := mocks.NewMockLootService(t)
	svc.On("Generate", mock.Anything,
		mock.MatchedBy(func(h domain.HostContext) bool {
			return h.ActiveScene == "tavern" && h.SelectedPosition != nil && *h.SelectedPosition == domain.Position{X: 5, Y: 6}
		}),
		mock.MatchedBy(func(req loot.GenerateRequest) bool {
			return *req.MaxValue == 50 && *req.MaxItems == 3 && len(req.Rarities) == 2 && req.ContainerName == "Hoard"
		}),
	).Run(func(args mock.Arguments) {
		host := args.Get(1).(domain.HostContext)
		host.Notify(context.Background(), domain.NotifyInfo, "Generated 2 loot items worth ≤ 50 gp")
	}).Return(sampleGeneration(), nil)

	w := do(t, newTestRouter(svc, nil), http.MethodPost, "/generate",
		`{"max_value": 50, "max_items": 3, "rarities": ["common", "rare"], "container_name": "Hoard", "scene": "tavern", "position": {"x": 5, "y": 6}}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp GenerateLootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "c-1", resp.Generation.Container.ID)
	assert.Equal(t, []domain.Notification{{Level: domain.NotifyInfo, Message: "Generated 2 loot items worth ≤ 50 gp"}}, resp.Notifications)
}

func TestHandleGenerate_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"no candidates", domain.ErrNoCandidates, http.StatusUnprocessableEntity, ErrMsgNoCandidatesError},
		{"no catalog", fmt.Errorf("%w: empty", domain.ErrNoCatalogSource), http.StatusServiceUnavailable, ErrMsgNoCatalogError},
		{"invalid input", fmt.Errorf("%w: max value", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidInputError},
		{"database outage", fmt.Errorf("failed to list compendiums: %w", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unexpected", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLootService(t)
			svc.On("Generate", mock.Anything, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					args.Get(1).(domain.HostContext).Notify(context.Background(), domain.NotifyWarn, "warned")
				}).
				Return(nil, tt.err)

			w := do(t, newTestRouter(svc, nil), http.MethodPost, "/generate", `{"rarities": ["common"]}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
			assert.Equal(t, []domain.Notification{{Level: domain.NotifyWarn, Message: "warned"}}, resp.Notifications)
			assert.NotContains(t, w.Body.String(), assert.AnError.Error(), "internal details must not leak")
		})
	}
}

func TestHandleGenerate_RejectsInvalidBodies(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed JSON", `{"max_value": `, ""},
		{"unknown field", `{"budget": 5}`, ""},
		{"negative max value", `{"max_value": -1}`, "max_value"},
		{"negative items", `{"max_items": -2}`, "max_items"},
		{"unknown rarity", `{"rarities": ["legendary"]}`, "rarities[0]"},
		{"party too large", `{"level": 3, "party_size": 40}`, "party_size"},
		{"control characters in name", `{"container_name": "a\nb"}`, "container_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLootService(t)

			w := do(t, newTestRouter(svc, nil), http.MethodPost, "/generate", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			if tt.field != "" {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp.Fields, tt.field)
			}
			svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandlePreview(t *testing.T) {
	svc := mocks.NewMockLootService(t)
	result := &domain.LootResult{
		Items:      []domain.ResolvedItem{{CatalogEntry: domain.CatalogEntry{ID: "rope", Name: "Rope"}, Price: domain.PriceOf(0.1)}},
		TotalValue: 0.1,
		MaxValue:   1,
	}
	svc.On("Preview", mock.Anything, mock.MatchedBy(func(req loot.GenerateRequest) bool {
		return req.Level == 4 && req.PartySize == 3 && req.MaxValue == nil
	})).Return(result, nil)

	w := do(t, newTestRouter(svc, nil), http.MethodPost, "/preview", `{"level": 4, "party_size": 3, "rarities": ["common"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Rope"`)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePreview_NoCandidates(t *testing.T) {
	svc := mocks.NewMockLootService(t)
	svc.On("Preview", mock.Anything, mock.Anything).Return(nil, domain.ErrNoCandidates)

	w := do(t, newTestRouter(svc, nil), http.MethodPost, "/preview", `{"rarities": []}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleBudget(t *testing.T) {
	svc := mocks.NewMockLootService(t)
	svc.On("Budget", 12, 1).Return(1750.0)
	svc.On("Budget", 12, 4).Return(7000.0)

	w := do(t, newTestRouter(svc, nil), http.MethodGet, "/budget?level=12", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp BudgetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, BudgetResponse{Level: 12, PartySize: 4, PerCharacterBudget: 1750, PartyBudget: 7000}, resp)
}

func TestHandleBudget_InvalidQuery(t *testing.T) {
	svc := mocks.NewMockLootService(t)

	w := do(t, newTestRouter(svc, nil), http.MethodGet, "/budget?level=ten", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "level")
}

func TestHandleBudget_RejectsValuesBelowOne(t *testing.T) {
	tests := []struct {
		query string
		param string
	}{
		{"level=0", "level"},
		{"level=-3", "level"},
		{"level=5&party_size=0", "party_size"},
		{"level=5&party_size=-2", "party_size"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := mocks.NewMockLootService(t)

			w := do(t, newTestRouter(svc, nil), http.MethodGet, "/budget?"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.param)
			svc.AssertNotCalled(t, "Budget", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetContainer(t *testing.T) {
	containers := mocks.NewMockContainerReader(t)
	containers.On("GetContainer", mock.Anything, "c-1").Return(&domain.Container{ID: "c-1", Name: "Loot Chest"}, nil)
	containers.On("GetContainer", mock.Anything, "missing").Return(nil, fmt.Errorf("%w: missing", domain.ErrContainerNotFound))
	router := newTestRouter(mocks.NewMockLootService(t), containers)

	w := do(t, router, http.MethodGet, "/containers/c-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Loot Chest"`)

	w = do(t, router, http.MethodGet, "/containers/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgContainerNotFound)
}

func TestHandleListCompendiums(t *testing.T) {
	svc := mocks.NewMockLootService(t)
	svc.On("Sources", mock.Anything).Return([]loot.SourceSummary{{Name: "pf2e.equipment-srd", Entries: 12, Lootable: 10}}, nil).Once()
	svc.On("Sources", mock.Anything).Return(nil, domain.ErrNoCatalogSource).Once()
	router := newTestRouter(svc, nil)

	w := do(t, router, http.MethodGet, "/compendiums", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pf2e.equipment-srd"`)

	w = do(t, router, http.MethodGet, "/compendiums", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	status, msg := mapServiceErrorToUserMessage(nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrMsgUnknownError, msg)

	status, _ = mapServiceErrorToUserMessage(fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", domain.ErrSceneNotFound)))
	assert.Equal(t, http.StatusNotFound, status)
}
