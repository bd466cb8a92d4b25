package service

import (
	"context"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/config"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/quiz"
	"go.uber.org/zap"
)

type DeckI interface {
	Deck(ctx context.Context) ([]models.Flashcard, error)
}

// QuizS wires quiz sessions to the card store and the progress tracker.
type QuizS struct {
	deck     DeckI
	recorder quiz.Recorder
	progress quiz.ProgressRecorder
	cfg      config.QuizConfig
	log      *zap.Logger
}

func NewQuizService(cards *CardS, progress *ProgressS, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	return &QuizS{
		deck:     cards,
		recorder: cards,
		progress: progress,
		cfg:      cfg,
		log:      log,
	}
}

// QuizLanguages reports the configured quiz language pair.
func (q *QuizS) QuizLanguages() (source, target string) {
	return q.cfg.SourceLang, q.cfg.TargetLang
}

// StartQuiz builds a session over the full card collection. onTick and
// onExpire follow the speed-round countdown and may be nil.
func (q *QuizS) StartQuiz(ctx context.Context, mode quiz.Mode, onTick func(int), onExpire func(quiz.Grading)) (*quiz.Session, error) {
	deck, err := q.deck.Deck(ctx)
	if err != nil {
		return nil, err
	}

	return quiz.New(ctx, deck, mode, quiz.Config{
		SourceLang:   q.cfg.SourceLang,
		TargetLang:   q.cfg.TargetLang,
		SpeedSeconds: q.cfg.SpeedSeconds,
		OnTick:       onTick,
		OnExpire:     onExpire,
	}, q.recorder, q.progress, q.log)
}
