package host

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// World is an in-memory host: scenes, containers and placed tokens.
// It is safe for concurrent use.
type World struct {
	mu         sync.RWMutex
	scenes     map[string]string
	containers map[string]*domain.Container
	tokens     map[string][]domain.Token
	now        func() time.Time
}

// NewWorld creates a world with the given scenes registered.
func NewWorld(sceneIDs ...string) *World {
	w := &World{
		scenes:     make(map[string]string),
		containers: make(map[string]*domain.Container),
		tokens:     make(map[string][]domain.Token),
		now:        time.Now,
	}
	for _, id := range sceneIDs {
		w.scenes[id] = id
	}
	return w
}

// UpsertScene registers a scene tokens can be placed on.
func (w *World) UpsertScene(ctx context.Context, id, name string) error {
	if id == "" {
		return fmt.Errorf("%w: empty scene id", domain.ErrInvalidInput)
	}
	if name == "" {
		name = id
	}
	w.mu.Lock()
	w.scenes[id] = name
	w.mu.Unlock()
	return nil
}

// Scenes lists registered scene ids in sorted order.
func (w *World) Scenes() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]string, 0, len(w.scenes))
	for id := range w.scenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (w *World) CreateContainer(ctx context.Context, spec domain.ContainerSpec) (*domain.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := &domain.Container{
		ID:        uuid.NewString(),
		Name:      spec.Name,
		Type:      spec.Type,
		Items:     append([]domain.ContainerItem(nil), spec.Items...),
		Token:     spec.Token,
		CreatedAt: w.now(),
	}

	w.mu.Lock()
	w.containers[c.ID] = c
	w.mu.Unlock()

	out := *c
	return &out, nil
}

func (w *World) GetContainer(ctx context.Context, id string) (*domain.Container, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	c, ok := w.containers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
	}
	out := *c
	out.Items = append([]domain.ContainerItem(nil), c.Items...)
	return &out, nil
}

func (w *World) PlaceToken(ctx context.Context, sceneID, containerID string, at domain.Position) (*domain.Token, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.scenes[sceneID]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSceneNotFound, sceneID)
	}
	if _, ok := w.containers[containerID]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, containerID)
	}

	token := domain.Token{
		ID:          uuid.NewString(),
		SceneID:     sceneID,
		ContainerID: containerID,
		Position:    at,
		CreatedAt:   w.now(),
	}
	w.tokens[sceneID] = append(w.tokens[sceneID], token)
	return &token, nil
}

// Tokens returns the tokens placed on a scene, oldest first.
func (w *World) Tokens(sceneID string) []domain.Token {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]domain.Token(nil), w.tokens[sceneID]...)
}

// ContainerCount is the number of containers created so far.
func (w *World) ContainerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.containers)
}
