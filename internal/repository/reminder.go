package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

type ReminderR struct {
	store KV
}

func NewReminderRepository(store KV) *ReminderR {
	return &ReminderR{store: store}
}

func (r *ReminderR) LoadSubscribers(ctx context.Context) ([]int64, error) {
	raw, err := r.store.Load(ctx, keySubscribers)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder subscribers: %w", err)
	}
	if raw == nil {
		return []int64{}, nil
	}

	var chatIDs []int64
	if err := json.Unmarshal(raw, &chatIDs); err != nil {
		return nil, fmt.Errorf("failed to decode reminder subscribers: %w", err)
	}

	return chatIDs, nil
}

func (r *ReminderR) SaveSubscribers(ctx context.Context, chatIDs []int64) error {
	raw, err := json.Marshal(chatIDs)
	if err != nil {
		return fmt.Errorf("failed to encode reminder subscribers: %w", err)
	}

	if err := r.store.Save(ctx, keySubscribers, raw); err != nil {
		return fmt.Errorf("failed to save reminder subscribers: %w", err)
	}

	return nil
}
