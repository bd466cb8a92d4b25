package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

type CardsR struct {
	store KV
}

func NewCardsRepository(store KV) *CardsR {
	return &CardsR{store: store}
}

// LoadCards returns the persisted flashcard collection, empty when nothing
// was ever saved. A payload that does not decode is reported so the service
// can fall back to an empty collection.
func (c *CardsR) LoadCards(ctx context.Context) ([]models.Flashcard, error) {
	raw, err := c.store.Load(ctx, keyFlashcards)
	if err != nil {
		return nil, fmt.Errorf("failed to load flashcards: %w", err)
	}
	if raw == nil {
		return []models.Flashcard{}, nil
	}

	var cards []models.Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode flashcards: %w", err)
	}

	return cards, nil
}

func (c *CardsR) SaveCards(ctx context.Context, cards []models.Flashcard) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to encode flashcards: %w", err)
	}

	if err := c.store.Save(ctx, keyFlashcards, raw); err != nil {
		return fmt.Errorf("failed to save flashcards: %w", err)
	}

	return nil
}
