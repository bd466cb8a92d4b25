package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

type DictionaryR struct {
	store KV
}

func NewDictionaryRepository(store KV) *DictionaryR {
	return &DictionaryR{store: store}
}

func (d *DictionaryR) LoadDictionary(ctx context.Context) ([]models.DictionaryEntry, error) {
	raw, err := d.store.Load(ctx, keyDictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if raw == nil {
		return []models.DictionaryEntry{}, nil
	}

	var entries []models.DictionaryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}

	return entries, nil
}

func (d *DictionaryR) SaveDictionary(ctx context.Context, entries []models.DictionaryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}

	if err := d.store.Save(ctx, keyDictionary, raw); err != nil {
		return fmt.Errorf("failed to save dictionary: %w", err)
	}

	return nil
}
