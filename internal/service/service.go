package service

import (
	"context"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/config"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"go.uber.org/zap"
)

type TranslatorI interface {
	Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error)
}

type RepositoryI interface {
	CardRI
	DictRI
	TheoryRI
	ProgressRI
	ReminderRI
}

type Service struct {
	*CardS
	*DictS
	*TheoryS
	*ProgressS
	*QuizS
	*ReminderS
}

func InitServices(api TranslatorI, repo RepositoryI, cfg config.QuizConfig, log *zap.Logger) *Service {
	cards := NewCardService(repo, log)
	dict := NewDictService(api, repo, log)
	progress := NewProgressService(repo, cfg.DailyGoal, time.Now, log)

	return &Service{
		CardS:     cards,
		DictS:     dict,
		TheoryS:   NewTheoryService(repo, log),
		ProgressS: progress,
		QuizS:     NewQuizService(cards, progress, cfg, log),
		ReminderS: NewReminderService(repo, log),
	}
}
