package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"go.uber.org/zap"
)

type TheoryRI interface {
	LoadTheory(ctx context.Context) ([]models.TheoryMaterial, error)
	SaveTheory(ctx context.Context, materials []models.TheoryMaterial) error
}

type TheoryS struct {
	repo TheoryRI
	log  *zap.Logger

	mu        sync.Mutex
	loaded    bool
	materials []models.TheoryMaterial
}

func NewTheoryService(repo TheoryRI, log *zap.Logger) *TheoryS {
	return &TheoryS{
		repo: repo,
		log:  log,
	}
}

func (t *TheoryS) ensure(ctx context.Context) {
	if t.loaded {
		return
	}

	materials, err := t.repo.LoadTheory(ctx)
	if err != nil {
		t.log.Warn("falling back to empty theory list", zap.Error(err))
		materials = []models.TheoryMaterial{}
	}

	t.materials = materials
	t.loaded = true
}

func (t *TheoryS) CreateMaterial(ctx context.Context, title, language, description string) (models.TheoryMaterial, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" || description == "" {
		return models.TheoryMaterial{}, fmt.Errorf("title and description are required")
	}

	material := models.TheoryMaterial{
		ID:          time.Now().UnixMilli(),
		Title:       title,
		Language:    language,
		Description: description,
		CreatedAt:   time.Now(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure(ctx)

	t.materials = append(t.materials, material)
	if err := t.repo.SaveTheory(ctx, t.materials); err != nil {
		return models.TheoryMaterial{}, err
	}

	return material, nil
}

func (t *TheoryS) DeleteMaterial(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure(ctx)

	for i := range t.materials {
		if t.materials[i].ID == id {
			t.materials = append(t.materials[:i], t.materials[i+1:]...)
			return t.repo.SaveTheory(ctx, t.materials)
		}
	}

	return fmt.Errorf("theory material %d not found", id)
}

func (t *TheoryS) Materials(ctx context.Context) ([]models.TheoryMaterial, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure(ctx)

	list := append([]models.TheoryMaterial(nil), t.materials...)
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}
