package service

import (
	"context"
	"sync"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"go.uber.org/zap"
)

type ProgressRI interface {
	LoadProgress(ctx context.Context) (models.DailyProgress, error)
	SaveProgress(ctx context.Context, progress models.DailyProgress) error
}

// ProgressS maintains the daily streak record. The wall clock is injected so
// tests can simulate day rollovers.
type ProgressS struct {
	repo ProgressRI
	goal int
	now  func() time.Time
	log  *zap.Logger

	mu sync.Mutex
}

func NewProgressService(repo ProgressRI, dailyGoal int, now func() time.Time, log *zap.Logger) *ProgressS {
	if dailyGoal <= 0 {
		dailyGoal = 20
	}
	return &ProgressS{
		repo: repo,
		goal: dailyGoal,
		now:  now,
		log:  log,
	}
}

// RecordStudyEvent is called once per graded question and once at quiz
// start. On the first event of a new calendar day the daily counters reset
// and the streak moves: +1 when exactly one day passed since the last study
// date, back to 1 on any longer gap or on the first ever study.
func (p *ProgressS) RecordStudyEvent(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	progress := p.load(ctx)
	today := p.now().Format(time.DateOnly)

	if progress.LastStudyDate != today {
		gap, known := dayGap(progress.LastStudyDate, today)
		switch {
		case !known:
			progress.Streak = 1
		case gap == 1:
			progress.Streak++
		case gap > 1:
			progress.Streak = 1
		}

		progress.LastStudyDate = today
		progress.StudiedToday = 0
		progress.ExercisesToday = 0
	}

	progress.StudiedToday++
	progress.ExercisesToday++
	progress.TotalStudied++

	return p.repo.SaveProgress(ctx, progress)
}

// Overview returns the current record together with the derived daily goal
// percentage.
func (p *ProgressS) Overview(ctx context.Context) (models.DailyProgress, int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	progress := p.load(ctx)

	// The stored counters belong to the last study date; a new day without
	// any study event means zero so far.
	if progress.LastStudyDate != p.now().Format(time.DateOnly) {
		progress.StudiedToday = 0
		progress.ExercisesToday = 0
	}

	return progress, p.goalPercent(progress)
}

func (p *ProgressS) goalPercent(progress models.DailyProgress) int {
	percent := progress.ExercisesToday * 100 / p.goal
	if percent > 100 {
		percent = 100
	}
	return percent
}

func (p *ProgressS) load(ctx context.Context) models.DailyProgress {
	progress, err := p.repo.LoadProgress(ctx)
	if err != nil {
		p.log.Warn("falling back to zero daily progress", zap.Error(err))
		return models.DailyProgress{}
	}
	return progress
}

// dayGap is the number of whole calendar days between two DateOnly strings.
// known is false when there is no usable previous date.
func dayGap(last, today string) (int, bool) {
	if last == "" {
		return 0, false
	}

	lastDate, err := time.Parse(time.DateOnly, last)
	if err != nil {
		return 0, false
	}
	todayDate, err := time.Parse(time.DateOnly, today)
	if err != nil {
		return 0, false
	}

	return int(todayDate.Sub(lastDate).Hours() / 24), true
}
