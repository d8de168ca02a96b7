package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/host"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/loot"
)

// ContainerReader reads back created containers
type ContainerReader interface {
	GetContainer(ctx context.Context, id string) (*domain.Container, error)
}

// GenerateLootRequest is the body of the generate and preview endpoints.
// Omitted max_value falls back to level and party_size, then to 50 gp.
type GenerateLootRequest struct {
	MaxValue      *float64         `json:"max_value,omitempty" validate:"omitempty,gte=0,lte=1000000"`
	MaxItems      *int             `json:"max_items,omitempty" validate:"omitempty,gte=0,lte=100"`
	Level         int              `json:"level,omitempty" validate:"gte=0,lte=30"`
	PartySize     int              `json:"party_size,omitempty" validate:"gte=0,lte=12"`
	Rarities      []string         `json:"rarities" validate:"max=4,dive,rarity"`
	ContainerName string           `json:"container_name,omitempty" validate:"max=100,excludesall=\x00\n\r\t"`
	Scene         string           `json:"scene,omitempty" validate:"max=100"`
	Position      *domain.Position `json:"position,omitempty"`
}

func (req GenerateLootRequest) toLoot() loot.GenerateRequest {
	return loot.GenerateRequest{
		MaxValue:      req.MaxValue,
		MaxItems:      req.MaxItems,
		Rarities:      req.Rarities,
		Level:         req.Level,
		PartySize:     req.PartySize,
		ContainerName: req.ContainerName,
	}
}

// GenerateLootResponse is a created container with the messages raised on the way
type GenerateLootResponse struct {
	Generation    *domain.Generation    `json:"generation"`
	Notifications []domain.Notification `json:"notifications"`
}

// PreviewLootResponse is a dry-run selection
type PreviewLootResponse struct {
	Result *domain.LootResult `json:"result"`
}

// BudgetResponse is the level-based budget for a party
type BudgetResponse struct {
	Level              int     `json:"level"`
	PartySize          int     `json:"party_size"`
	PerCharacterBudget float64 `json:"per_character_gp"`
	PartyBudget        float64 `json:"party_gp"`
}

// CompendiumsResponse lists the catalog sources
type CompendiumsResponse struct {
	Compendiums []loot.SourceSummary `json:"compendiums"`
}

// LootHandler serves the loot endpoints
type LootHandler struct {
	svc        loot.Service
	containers ContainerReader
}

// NewLootHandler creates the loot handlers
func NewLootHandler(svc loot.Service, containers ContainerReader) *LootHandler {
	return &LootHandler{svc: svc, containers: containers}
}

// HandleGenerate creates a loot container and places its token
// @Summary Generate loot
// @Description Selects random compendium items within the budget, creates a loot container and places its token on the scene
// @Tags loot
// @Accept json
// @Produce json
// @Param request body GenerateLootRequest true "Generation parameters"
// @Success 201 {object} GenerateLootResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No matching items"
// @Failure 503 {object} ErrorResponse "No compendiums"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/loot/generate [post]
func (h *LootHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateLootRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate loot"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	log.Debug("Generate loot request",
		"max_value", req.MaxValue,
		"max_items", req.MaxItems,
		"level", req.Level,
		"rarities", req.Rarities,
		"scene", req.Scene)

	notes := host.NewRecordingNotifier(host.LogNotifier{})
	hostCtx := domain.HostContext{
		ActiveScene:      req.Scene,
		SelectedPosition: req.Position,
		Notifier:         notes,
	}

	gen, err := h.svc.Generate(r.Context(), hostCtx, req.toLoot())
	if err != nil {
		respondServiceError(w, r, ErrMsgGenerateLootFailed, err, notes.Messages())
		return
	}

	respondJSON(w, http.StatusCreated, GenerateLootResponse{
		Generation:    gen,
		Notifications: notes.Messages(),
	})
}

// HandlePreview runs the selection without creating anything
// @Summary Preview loot
// @Description Dry run of loot generation. Nothing is created or placed.
// @Tags loot
// @Accept json
// @Produce json
// @Param request body GenerateLootRequest true "Generation parameters"
// @Success 200 {object} PreviewLootResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/loot/preview [post]
func (h *LootHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req GenerateLootRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview loot"); err != nil {
		return
	}

	result, err := h.svc.Preview(r.Context(), req.toLoot())
	if err != nil {
		respondServiceError(w, r, ErrMsgPreviewLootFailed, err, nil)
		return
	}

	respondJSON(w, http.StatusOK, PreviewLootResponse{Result: result})
}

// HandleBudget returns the level-based treasure budget
// @Summary Budget by level
// @Tags loot
// @Produce json
// @Param level query int true "Party level" minimum(1)
// @Param party_size query int false "Number of characters (default 4)" minimum(1)
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/loot/budget [get]
func (h *LootHandler) HandleBudget(w http.ResponseWriter, r *http.Request) {
	level, ok := GetOptionalPositiveIntQueryParam(r, w, "level", 1)
	if !ok {
		return
	}
	partySize, ok := GetOptionalPositiveIntQueryParam(r, w, "party_size", loot.DefaultPartySize)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, BudgetResponse{
		Level:              level,
		PartySize:          partySize,
		PerCharacterBudget: h.svc.Budget(level, 1),
		PartyBudget:        h.svc.Budget(level, partySize),
	})
}

// HandleGetContainer reads back a created container
// @Summary Get container
// @Tags loot
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} domain.Container
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/loot/containers/{id} [get]
func (h *LootHandler) HandleGetContainer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
		return
	}

	container, err := h.containers.GetContainer(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetContainerFailed, err, nil)
		return
	}

	respondJSON(w, http.StatusOK, container)
}

// HandleListCompendiums lists catalog sources with entry counts
// @Summary List compendiums
// @Tags compendium
// @Produce json
// @Success 200 {object} CompendiumsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/compendiums [get]
func (h *LootHandler) HandleListCompendiums(w http.ResponseWriter, r *http.Request) {
	sources, err := h.svc.Sources(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListCompendiumsFailed, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, CompendiumsResponse{Compendiums: sources})
}
