package repository

import "context"

// KV is the persistence collaborator: one JSON blob per named collection.
// Load returns nil for a key that was never saved.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

const (
	keyFlashcards  = "flashcards"
	keyDictionary  = "dictionary"
	keyTheory      = "theory"
	keyProgress    = "daily_progress"
	keySubscribers = "reminder_subscribers"
)

type Repository struct {
	*CardsR
	*DictionaryR
	*TheoryR
	*ProgressR
	*ReminderR
}

func NewRepository(store KV) Repository {
	return Repository{
		CardsR:      NewCardsRepository(store),
		DictionaryR: NewDictionaryRepository(store),
		TheoryR:     NewTheoryRepository(store),
		ProgressR:   NewProgressRepository(store),
		ReminderR:   NewReminderRepository(store),
	}
}
