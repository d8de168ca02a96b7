package handler

import (
	"context"
	"net/http"

	"github.com/osse101/LootForge_Go/internal/compendium"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// CompendiumSyncer re-reads compendium packs from disk into the store
type CompendiumSyncer interface {
	Sync(ctx context.Context) (*compendium.SyncResult, error)
}

// CompendiumHandler serves compendium administration endpoints
type CompendiumHandler struct {
	syncer CompendiumSyncer
}

func NewCompendiumHandler(syncer CompendiumSyncer) *CompendiumHandler {
	return &CompendiumHandler{syncer: syncer}
}

// HandleSync re-syncs changed packs and drops their cached documents
// @Summary Sync compendiums
// @Description Reloads compendium pack files. Unchanged packs are skipped and packs whose file was removed are deleted.
// @Tags compendium
// @Produce json
// @Success 200 {object} compendium.SyncResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/compendiums/sync [post]
func (h *CompendiumHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncer.Sync(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgSyncCompendiumsFailed, err, nil)
		return
	}

	logger.FromContext(r.Context()).Info("Compendiums synced",
		"synced", result.PacksSynced,
		"skipped", result.PacksSkipped,
		"removed", result.PacksRemoved)
	respondJSON(w, http.StatusOK, result)
}
