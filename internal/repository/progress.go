package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

type ProgressR struct {
	store KV
}

func NewProgressRepository(store KV) *ProgressR {
	return &ProgressR{store: store}
}

func (p *ProgressR) LoadProgress(ctx context.Context) (models.DailyProgress, error) {
	raw, err := p.store.Load(ctx, keyProgress)
	if err != nil {
		return models.DailyProgress{}, fmt.Errorf("failed to load daily progress: %w", err)
	}
	if raw == nil {
		return models.DailyProgress{}, nil
	}

	var progress models.DailyProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return models.DailyProgress{}, fmt.Errorf("failed to decode daily progress: %w", err)
	}

	return progress, nil
}

func (p *ProgressR) SaveProgress(ctx context.Context, progress models.DailyProgress) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode daily progress: %w", err)
	}

	if err := p.store.Save(ctx, keyProgress, raw); err != nil {
		return fmt.Errorf("failed to save daily progress: %w", err)
	}

	return nil
}
