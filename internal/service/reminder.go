package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type ReminderRI interface {
	LoadSubscribers(ctx context.Context) ([]int64, error)
	SaveSubscribers(ctx context.Context, chatIDs []int64) error
}

type ReminderS struct {
	repo ReminderRI
	log  *zap.Logger

	mu sync.Mutex
}

func NewReminderService(repo ReminderRI, log *zap.Logger) *ReminderS {
	return &ReminderS{
		repo: repo,
		log:  log,
	}
}

// Subscribe enrolls a chat for the daily study reminder. Reports whether the
// chat was newly added.
func (r *ReminderS) Subscribe(ctx context.Context, chatID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chatIDs := r.load(ctx)
	for _, id := range chatIDs {
		if id == chatID {
			return false, nil
		}
	}

	chatIDs = append(chatIDs, chatID)
	return true, r.repo.SaveSubscribers(ctx, chatIDs)
}

func (r *ReminderS) Unsubscribe(ctx context.Context, chatID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chatIDs := r.load(ctx)
	for i, id := range chatIDs {
		if id == chatID {
			chatIDs = append(chatIDs[:i], chatIDs[i+1:]...)
			return true, r.repo.SaveSubscribers(ctx, chatIDs)
		}
	}

	return false, nil
}

func (r *ReminderS) Subscribers(ctx context.Context) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *ReminderS) load(ctx context.Context) []int64 {
	chatIDs, err := r.repo.LoadSubscribers(ctx)
	if err != nil {
		r.log.Warn("falling back to empty subscriber list", zap.Error(err))
		return []int64{}
	}
	return chatIDs
}
