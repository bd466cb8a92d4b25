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

type CardRI interface {
	LoadCards(ctx context.Context) ([]models.Flashcard, error)
	SaveCards(ctx context.Context, cards []models.Flashcard) error
}

// CardS owns the in-memory flashcard collection. Every mutation persists the
// whole collection through the repository before returning.
type CardS struct {
	repo CardRI
	log  *zap.Logger

	mu     sync.Mutex
	loaded bool
	cards  []models.Flashcard
}

func NewCardService(repo CardRI, log *zap.Logger) *CardS {
	return &CardS{
		repo: repo,
		log:  log,
	}
}

// ensure loads the collection on first use. A payload that fails to decode
// is dropped in favour of an empty collection: local state favours
// availability over strict validation. Caller holds the mutex.
func (c *CardS) ensure(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	cards, err := c.repo.LoadCards(ctx)
	if err != nil {
		c.log.Warn("falling back to empty flashcard collection", zap.Error(err))
		cards = []models.Flashcard{}
	}

	c.cards = cards
	c.loaded = true
	return nil
}

func (c *CardS) CreateCard(ctx context.Context, category models.Category, sourceLang, targetLang, sourceText, targetText string) (models.Flashcard, error) {
	sourceText = strings.TrimSpace(sourceText)
	targetText = strings.TrimSpace(targetText)

	if sourceText == "" || targetText == "" {
		return models.Flashcard{}, fmt.Errorf("source and target texts are required")
	}
	if sourceLang == targetLang {
		return models.Flashcard{}, fmt.Errorf("source and target languages must be different")
	}
	if !category.Valid() {
		category = models.CategoryWords
	}

	card := models.Flashcard{
		ID:             time.Now().UnixMilli(),
		Category:       category,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		SourceText:     sourceText,
		TargetText:     targetText,
		CreatedAt:      time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return models.Flashcard{}, err
	}

	c.cards = append(c.cards, card)
	if err := c.repo.SaveCards(ctx, c.cards); err != nil {
		return models.Flashcard{}, err
	}

	return card, nil
}

func (c *CardS) UpdateCard(ctx context.Context, id int64, category models.Category, sourceText, targetText string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return err
	}

	for i := range c.cards {
		if c.cards[i].ID != id {
			continue
		}
		if category.Valid() {
			c.cards[i].Category = category
		}
		if s := strings.TrimSpace(sourceText); s != "" {
			c.cards[i].SourceText = s
		}
		if t := strings.TrimSpace(targetText); t != "" {
			c.cards[i].TargetText = t
		}
		return c.repo.SaveCards(ctx, c.cards)
	}

	return fmt.Errorf("card %d not found", id)
}

func (c *CardS) DeleteCard(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return err
	}

	for i := range c.cards {
		if c.cards[i].ID == id {
			c.cards = append(c.cards[:i], c.cards[i+1:]...)
			return c.repo.SaveCards(ctx, c.cards)
		}
	}

	return fmt.Errorf("card %d not found", id)
}

// RecordAttempt increments the card's attempt counter, and the correct
// counter when wasCorrect, then persists. Attempts never decrease and
// correct never exceeds attempts.
func (c *CardS) RecordAttempt(ctx context.Context, cardID int64, wasCorrect bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return err
	}

	for i := range c.cards {
		if c.cards[i].ID != cardID {
			continue
		}
		c.cards[i].Attempts++
		if wasCorrect {
			c.cards[i].Correct++
		}
		return c.repo.SaveCards(ctx, c.cards)
	}

	return fmt.Errorf("card %d not found", cardID)
}

// Deck returns a copy of the full collection for a quiz session.
func (c *CardS) Deck(ctx context.Context) ([]models.Flashcard, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	return append([]models.Flashcard(nil), c.cards...), nil
}

func (c *CardS) Cards(ctx context.Context, filter models.CardFilter) ([]models.Flashcard, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	list := make([]models.Flashcard, 0, len(c.cards))
	query := strings.ToLower(filter.Query)

	for _, card := range c.cards {
		if query != "" &&
			!strings.Contains(strings.ToLower(card.SourceText), query) &&
			!strings.Contains(strings.ToLower(card.TargetText), query) {
			continue
		}
		if filter.SourceLang != "" && filter.SourceLang != "any" && card.SourceLanguage != filter.SourceLang {
			continue
		}
		if filter.TargetLang != "" && filter.TargetLang != "any" && card.TargetLanguage != filter.TargetLang {
			continue
		}
		if filter.Letter != "" && filter.Letter != "all" && !strings.HasPrefix(strings.ToUpper(card.SourceText), strings.ToUpper(filter.Letter)) {
			continue
		}
		if filter.Category != "" && filter.Category != "any" && string(card.Category) != filter.Category {
			continue
		}
		list = append(list, card)
	}

	switch filter.Sort {
	case "az":
		sort.Slice(list, func(i, j int) bool { return list[i].SourceText < list[j].SourceText })
	case "za":
		sort.Slice(list, func(i, j int) bool { return list[i].SourceText > list[j].SourceText })
	default:
		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}

	return list, nil
}

// CardStats counts the collection; a card is learned once it has been
// answered correctly at least once.
func (c *CardS) CardStats(ctx context.Context) (models.CardStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensure(ctx); err != nil {
		return models.CardStats{}, err
	}

	stats := models.CardStats{TotalCount: len(c.cards)}
	for _, card := range c.cards {
		if card.Correct > 0 {
			stats.LearnedCount++
		}
	}

	return stats, nil
}
