package quiz

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"go.uber.org/zap"
)

// Recorder is the card-store side of grading: attempts always increment,
// correct only on a correct answer, and the collection is persisted after
// every mutation.
type Recorder interface {
	RecordAttempt(ctx context.Context, cardID int64, wasCorrect bool) error
}

// ProgressRecorder updates the daily streak record. Called once at quiz
// start and once per graded question.
type ProgressRecorder interface {
	RecordStudyEvent(ctx context.Context) error
}

type Config struct {
	SourceLang   string
	TargetLang   string
	SpeedSeconds int

	// OnTick and OnExpire let the presentation layer follow the speed-round
	// countdown. Both may be nil. OnExpire is invoked after the forced wrong
	// grade has been recorded.
	OnTick   func(timeLeft int)
	OnExpire func(g Grading)

	// Seed fixes the shuffle/direction randomness; zero means time-based.
	Seed int64
}

// Grading is the outcome of a single submission. Closed reports that the
// question became terminal and the next action is Advance.
type Grading struct {
	Correct       bool
	Closed        bool
	TimedOut      bool
	CorrectAnswer string
}

type Summary struct {
	Total    int
	Correct  int
	Wrong    int
	Accuracy int
	HintUsed bool
}

type questionState struct {
	q        Question
	mode     Mode
	answered bool
	revealed bool
	disabled map[int]bool
	matching *MatchingRound
	timer    *countdown
}

// Session is one quiz run over a deck shuffled once at start. All state
// transitions happen under the session mutex; the speed-round timer is the
// only concurrent caller and grades a timeout at most once thanks to the
// answered flag.
type Session struct {
	mu sync.Mutex

	deck         []models.Flashcard
	mode         Mode
	idx          int
	correctCount int
	wrongCount   int
	hintUsed     bool
	finished     bool
	closed       bool
	cur          *questionState

	cfg      Config
	cards    Recorder
	progress ProgressRecorder
	rng      *rand.Rand
	log      *zap.Logger
}

func New(ctx context.Context, deck []models.Flashcard, mode Mode, cfg Config, cards Recorder, progress ProgressRecorder, log *zap.Logger) (*Session, error) {
	if len(deck) == 0 {
		return nil, ErrNoCardsAvailable
	}
	if mode == ModeMatching && len(deck) < 2 {
		return nil, ErrInsufficientCardsForMode
	}
	if cfg.SpeedSeconds <= 0 {
		cfg.SpeedSeconds = 10
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		deck:     append([]models.Flashcard(nil), deck...),
		mode:     mode,
		cfg:      cfg,
		cards:    cards,
		progress: progress,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
	}

	s.rng.Shuffle(len(s.deck), func(i, j int) {
		s.deck[i], s.deck[j] = s.deck[j], s.deck[i]
	})

	if err := s.progress.RecordStudyEvent(ctx); err != nil {
		s.log.Warn("failed to record quiz start", zap.Error(err))
	}

	s.mu.Lock()
	s.present()
	s.mu.Unlock()

	return s, nil
}

// present builds the state for deck[idx]. Caller holds the mutex.
func (s *Session) present() {
	if s.idx >= len(s.deck) {
		s.finished = true
		s.cur = nil
		return
	}

	mode := s.mode
	if mode == ModeMixed {
		mode = mixedPool[s.rng.Intn(len(mixedPool))]
	}

	q := SelectQuestion(s.deck[s.idx], s.cfg.SourceLang, s.cfg.TargetLang, s.rng)
	q.Index = s.idx
	q.Total = len(s.deck)
	q.Mode = mode

	st := &questionState{q: q, mode: mode}

	switch mode {
	case ModeMultipleChoice:
		st.q.Options = Options(s.deck, q, s.rng)
		st.disabled = make(map[int]bool)
	case ModeMatching:
		round, err := buildMatchingRound(s.deck, s.idx, s.cfg.SourceLang, s.cfg.TargetLang, s.rng)
		if err != nil {
			// Fewer than 2 cards remain: skip past them instead of building
			// an unanswerable grid.
			s.log.Info("skipping unanswerable matching round", zap.Int("remaining", len(s.deck)-s.idx))
			s.idx = len(s.deck)
			s.finished = true
			s.cur = nil
			return
		}
		st.matching = round
	case ModeSpeed:
		st.q.TimeLeft = s.cfg.SpeedSeconds
		st.timer = newCountdown(s.cfg.SpeedSeconds, func(left int) {
			s.tickSpeed(st, left)
		}, func() {
			s.expireSpeed(st)
		})
	}

	s.cur = st
}

// Question returns the current question, or ErrQuizFinished past the end of
// the deck.
func (s *Session) Question() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.finished || s.cur == nil {
		return Question{}, ErrQuizFinished
	}
	return s.cur.q, nil
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Matching returns the active matching round.
func (s *Session) Matching() (*MatchingRound, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.finished || s.cur == nil {
		return nil, ErrQuizFinished
	}
	if s.cur.mode != ModeMatching {
		return nil, ErrModeMismatch
	}
	return s.cur.matching, nil
}

// SubmitAnswer grades free-text input in the typing, sentence, listening and
// speed modes. A wrong answer keeps the question open for another try; a
// correct one closes it.
func (s *Session) SubmitAnswer(ctx context.Context, input string) (Grading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return Grading{}, err
	}
	if !st.mode.typed() {
		return Grading{}, ErrModeMismatch
	}

	ok := Match(Normalize(input), Normalize(st.q.CorrectAnswer))
	if ok {
		st.answered = true
		s.stopTimer(st)
		s.correctCount++
	} else {
		s.wrongCount++
	}
	s.record(ctx, st.q.Card.ID, ok)

	return Grading{Correct: ok, Closed: ok, CorrectAnswer: st.q.CorrectAnswer}, nil
}

// ChooseOption grades a multiple-choice pick. A wrong pick disables only the
// chosen option and leaves the question open; the correct pick closes it.
func (s *Session) ChooseOption(ctx context.Context, option int) (Grading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return Grading{}, err
	}
	if st.mode != ModeMultipleChoice {
		return Grading{}, ErrModeMismatch
	}
	if option < 0 || option >= len(st.q.Options) {
		return Grading{}, ErrOptionDisabled
	}
	if st.disabled[option] {
		return Grading{}, ErrOptionDisabled
	}

	ok := st.q.Options[option] == st.q.CorrectAnswer
	if ok {
		st.answered = true
		s.correctCount++
	} else {
		st.disabled[option] = true
		s.wrongCount++
	}
	s.record(ctx, st.q.Card.ID, ok)

	return Grading{Correct: ok, Closed: ok, CorrectAnswer: st.q.CorrectAnswer}, nil
}

// Flip toggles the flashcard between front and back and reports whether the
// back is now showing.
func (s *Session) Flip() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return false, err
	}
	if st.mode != ModeFlashcardFlip {
		return false, ErrModeMismatch
	}

	st.revealed = !st.revealed
	return st.revealed, nil
}

// SelfGrade records the self-reported outcome of a flashcard flip and closes
// the question.
func (s *Session) SelfGrade(ctx context.Context, knewIt bool) (Grading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return Grading{}, err
	}
	if st.mode != ModeFlashcardFlip {
		return Grading{}, ErrModeMismatch
	}

	st.answered = true
	if knewIt {
		s.correctCount++
	} else {
		s.wrongCount++
	}
	s.record(ctx, st.q.Card.ID, knewIt)

	return Grading{Correct: knewIt, Closed: true, CorrectAnswer: st.q.CorrectAnswer}, nil
}

// CompleteRecording closes a pronunciation question: finishing the
// record-and-save action counts as correct.
func (s *Session) CompleteRecording(ctx context.Context) (Grading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return Grading{}, err
	}
	if st.mode != ModePronunciation {
		return Grading{}, ErrModeMismatch
	}

	st.answered = true
	s.correctCount++
	s.record(ctx, st.q.Card.ID, true)

	return Grading{Correct: true, Closed: true, CorrectAnswer: st.q.CorrectAnswer}, nil
}

// PickMatch resolves a left/right selection in a matching round. A matching
// pair is marked and credited to its card; completing the round scores one
// session success for the whole group and closes the question.
func (s *Session) PickMatch(ctx context.Context, prompt, answer int) (MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return MatchResult{}, err
	}
	if st.mode != ModeMatching {
		return MatchResult{}, ErrModeMismatch
	}

	round := st.matching
	if prompt < 0 || prompt >= len(round.Prompts) || answer < 0 || answer >= len(round.Answers) {
		return MatchResult{}, ErrOptionDisabled
	}
	if round.Prompts[prompt].Matched || round.Answers[answer].Matched {
		return MatchResult{}, ErrOptionDisabled
	}

	if round.Prompts[prompt].CardID != round.Answers[answer].CardID {
		return MatchResult{Matched: false}, nil
	}

	round.Prompts[prompt].Matched = true
	round.Answers[answer].Matched = true
	round.matched++

	if err := s.cards.RecordAttempt(ctx, round.Prompts[prompt].CardID, true); err != nil {
		s.log.Warn("failed to record matched pair", zap.Int64("card_id", round.Prompts[prompt].CardID), zap.Error(err))
	}

	if !round.Complete() {
		return MatchResult{Matched: true}, nil
	}

	st.answered = true
	s.correctCount++
	if err := s.progress.RecordStudyEvent(ctx); err != nil {
		s.log.Warn("failed to record study event", zap.Error(err))
	}
	// The round consumed size deck entries; Advance adds the final one.
	s.idx += round.size - 1

	return MatchResult{Matched: true, RoundComplete: true}, nil
}

// Hint reveals the correct answer and flags the session as hint-assisted.
func (s *Session) Hint() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.activeQuestion()
	if err != nil {
		return "", err
	}

	s.hintUsed = true
	return st.q.CorrectAnswer, nil
}

// Skip counts as a wrong answer and advances unconditionally, regardless of
// mode or whether the question was already terminal.
func (s *Session) Skip(ctx context.Context) (Question, *Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.finished || s.cur == nil {
		return Question{}, nil, ErrQuizFinished
	}

	st := s.cur
	if !st.answered {
		s.wrongCount++
		s.record(ctx, st.q.Card.ID, false)
		// A completed round already consumed its deck entries in PickMatch.
		if st.matching != nil {
			s.idx += st.matching.size - 1
		}
	}

	return s.advance()
}

// Advance moves to the next question, or returns the final summary once the
// deck is exhausted.
func (s *Session) Advance() (Question, *Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.finished {
		return Question{}, nil, ErrQuizFinished
	}
	return s.advance()
}

// advance stops any live timer, steps the index and presents the next
// question. Caller holds the mutex.
func (s *Session) advance() (Question, *Summary, error) {
	if s.cur != nil {
		s.stopTimer(s.cur)
	}

	s.idx++
	s.present()

	if s.finished {
		sum := s.summary()
		return Question{}, &sum, nil
	}
	return s.cur.q, nil, nil
}

// Close discards the session. Any live speed timer is stopped; per-card
// attempts already recorded stay persisted, the session itself is not.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.cur != nil {
		s.stopTimer(s.cur)
	}
}

func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Session) summary() Summary {
	total := len(s.deck)
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(s.correctCount) / float64(total) * 100))
	}
	return Summary{
		Total:    total,
		Correct:  s.correctCount,
		Wrong:    s.wrongCount,
		Accuracy: accuracy,
		HintUsed: s.hintUsed,
	}
}

func (s *Session) activeQuestion() (*questionState, error) {
	if s.closed || s.finished || s.cur == nil {
		return nil, ErrQuizFinished
	}
	if s.cur.answered {
		return nil, ErrQuestionClosed
	}
	return s.cur, nil
}

// record runs the grading bookkeeping in the mandated order: card counters
// first, then the daily progress event. Both collaborators persist
// internally, so persistence precedes whatever the caller renders.
func (s *Session) record(ctx context.Context, cardID int64, ok bool) {
	if err := s.cards.RecordAttempt(ctx, cardID, ok); err != nil {
		s.log.Warn("failed to record attempt", zap.Int64("card_id", cardID), zap.Error(err))
	}
	if err := s.progress.RecordStudyEvent(ctx); err != nil {
		s.log.Warn("failed to record study event", zap.Error(err))
	}
}

func (s *Session) stopTimer(st *questionState) {
	if st.timer != nil {
		st.timer.Stop()
	}
}

func (s *Session) tickSpeed(st *questionState, left int) {
	s.mu.Lock()
	if s.closed || st != s.cur || st.answered {
		s.mu.Unlock()
		return
	}
	st.q.TimeLeft = left
	cb := s.cfg.OnTick
	s.mu.Unlock()

	if cb != nil && left > 0 {
		cb(left)
	}
}

// expireSpeed force-grades an unanswered speed question as wrong. The
// answered flag under the mutex guarantees exactly one wrong attempt even if
// a manual submission lands at the same instant.
func (s *Session) expireSpeed(st *questionState) {
	s.mu.Lock()
	if s.closed || st != s.cur || st.answered {
		s.mu.Unlock()
		return
	}

	st.answered = true
	s.wrongCount++

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	s.record(ctx, st.q.Card.ID, false)
	cancel()

	g := Grading{Correct: false, Closed: true, TimedOut: true, CorrectAnswer: st.q.CorrectAnswer}
	cb := s.cfg.OnExpire
	s.mu.Unlock()

	if cb != nil {
		cb(g)
	}
}
