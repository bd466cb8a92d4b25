package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"go.uber.org/zap"
)

type DictRI interface {
	LoadDictionary(ctx context.Context) ([]models.DictionaryEntry, error)
	SaveDictionary(ctx context.Context, entries []models.DictionaryEntry) error
}

type DictS struct {
	translator TranslatorI
	repo       DictRI
	log        *zap.Logger

	mu      sync.Mutex
	loaded  bool
	entries []models.DictionaryEntry
}

func NewDictService(translator TranslatorI, repo DictRI, log *zap.Logger) *DictS {
	return &DictS{
		translator: translator,
		repo:       repo,
		log:        log,
	}
}

func (d *DictS) ensure(ctx context.Context) {
	if d.loaded {
		return
	}

	entries, err := d.repo.LoadDictionary(ctx)
	if err != nil {
		d.log.Warn("falling back to empty dictionary", zap.Error(err))
		entries = []models.DictionaryEntry{}
	}

	d.entries = entries
	d.loaded = true
}

func (d *DictS) CreateEntry(ctx context.Context, entry models.DictionaryEntry) (models.DictionaryEntry, error) {
	entry.SourceWord = strings.TrimSpace(entry.SourceWord)
	entry.TargetWord = strings.TrimSpace(entry.TargetWord)

	if entry.SourceWord == "" || entry.TargetWord == "" {
		return models.DictionaryEntry{}, fmt.Errorf("source and target words are required")
	}
	if entry.SourceLang == entry.TargetLang {
		return models.DictionaryEntry{}, fmt.Errorf("source and target languages must be different")
	}

	entry.ID = time.Now().UnixMilli()
	entry.CreatedAt = time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensure(ctx)

	d.entries = append(d.entries, entry)
	if err := d.repo.SaveDictionary(ctx, d.entries); err != nil {
		return models.DictionaryEntry{}, err
	}

	return entry, nil
}

// AddFromCard mirrors a new flashcard into the dictionary, skipping exact
// duplicates.
func (d *DictS) AddFromCard(ctx context.Context, card models.Flashcard) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensure(ctx)

	for _, e := range d.entries {
		if e.SourceLang == card.SourceLanguage &&
			e.TargetLang == card.TargetLanguage &&
			e.SourceWord == card.SourceText &&
			e.TargetWord == card.TargetText {
			return nil
		}
	}

	entryType := "other"
	if card.Category == models.CategoryWords {
		entryType = "noun"
	}

	d.entries = append(d.entries, models.DictionaryEntry{
		ID:         time.Now().UnixMilli() + rand.Int63n(1000),
		SourceLang: card.SourceLanguage,
		TargetLang: card.TargetLanguage,
		SourceWord: card.SourceText,
		TargetWord: card.TargetText,
		Type:       entryType,
		CreatedAt:  time.Now(),
	})

	return d.repo.SaveDictionary(ctx, d.entries)
}

func (d *DictS) UpdateEntry(ctx context.Context, entry models.DictionaryEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensure(ctx)

	for i := range d.entries {
		if d.entries[i].ID != entry.ID {
			continue
		}
		entry.CreatedAt = d.entries[i].CreatedAt
		d.entries[i] = entry
		return d.repo.SaveDictionary(ctx, d.entries)
	}

	return fmt.Errorf("dictionary entry %d not found", entry.ID)
}

func (d *DictS) DeleteEntry(ctx context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensure(ctx)

	for i := range d.entries {
		if d.entries[i].ID == id {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return d.repo.SaveDictionary(ctx, d.entries)
		}
	}

	return fmt.Errorf("dictionary entry %d not found", id)
}

func (d *DictS) Entries(ctx context.Context, filter models.DictionaryFilter) ([]models.DictionaryEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensure(ctx)

	list := make([]models.DictionaryEntry, 0, len(d.entries))
	query := strings.ToLower(filter.Query)

	for _, e := range d.entries {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.SourceWord), query) &&
			!strings.Contains(strings.ToLower(e.TargetWord), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) {
			continue
		}
		if filter.SourceLang != "" && filter.SourceLang != "any" && e.SourceLang != filter.SourceLang {
			continue
		}
		if filter.TargetLang != "" && filter.TargetLang != "any" && e.TargetLang != filter.TargetLang {
			continue
		}
		if filter.Letter != "" && filter.Letter != "all" && !strings.HasPrefix(strings.ToUpper(e.SourceWord), strings.ToUpper(filter.Letter)) {
			continue
		}
		list = append(list, e)
	}

	switch filter.Sort {
	case "az":
		sort.Slice(list, func(i, j int) bool { return list[i].SourceWord < list[j].SourceWord })
	case "za":
		sort.Slice(list, func(i, j int) bool { return list[i].SourceWord > list[j].SourceWord })
	default:
		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	}

	return list, nil
}

// Translate looks a word up through the external translation service.
func (d *DictS) Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error) {
	result, err := d.translator.Translate(ctx, text, source, target)
	if err != nil {
		d.log.Warn("translation lookup failed", zap.String("text", text), zap.Error(err))
		return models.TranslationResult{}, err
	}
	if result.Error != "" {
		return models.TranslationResult{}, fmt.Errorf("translation service: %s", result.Error)
	}

	return result, nil
}
