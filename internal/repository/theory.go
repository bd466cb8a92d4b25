package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

type TheoryR struct {
	store KV
}

func NewTheoryRepository(store KV) *TheoryR {
	return &TheoryR{store: store}
}

func (t *TheoryR) LoadTheory(ctx context.Context) ([]models.TheoryMaterial, error) {
	raw, err := t.store.Load(ctx, keyTheory)
	if err != nil {
		return nil, fmt.Errorf("failed to load theory: %w", err)
	}
	if raw == nil {
		return []models.TheoryMaterial{}, nil
	}

	var materials []models.TheoryMaterial
	if err := json.Unmarshal(raw, &materials); err != nil {
		return nil, fmt.Errorf("failed to decode theory: %w", err)
	}

	return materials, nil
}

func (t *TheoryR) SaveTheory(ctx context.Context, materials []models.TheoryMaterial) error {
	raw, err := json.Marshal(materials)
	if err != nil {
		return fmt.Errorf("failed to encode theory: %w", err)
	}

	if err := t.store.Save(ctx, keyTheory, raw); err != nil {
		return fmt.Errorf("failed to save theory: %w", err)
	}

	return nil
}
