package quiz

import (
	"math/rand"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

const matchingGroupSize = 4

type MatchItem struct {
	CardID  int64
	Text    string
	Matched bool
}

// MatchingRound is a left/right grid built from up to 4 upcoming deck
// entries. Prompts and Answers are shuffled independently; a pair matches
// when both picks carry the same card id. Callers mutate it only through
// Session.PickMatch.
type MatchingRound struct {
	Prompts []MatchItem
	Answers []MatchItem

	size    int
	matched int
}

type MatchResult struct {
	Matched       bool
	RoundComplete bool
}

func buildMatchingRound(deck []models.Flashcard, idx int, sourceLang, targetLang string, rng *rand.Rand) (*MatchingRound, error) {
	remaining := deck[idx:]
	if len(remaining) < 2 {
		return nil, ErrInsufficientCardsForMode
	}

	group := remaining
	if len(group) > matchingGroupSize {
		group = group[:matchingGroupSize]
	}

	round := &MatchingRound{
		Prompts: make([]MatchItem, 0, len(group)),
		Answers: make([]MatchItem, 0, len(group)),
		size:    len(group),
	}

	for _, card := range group {
		q := SelectQuestion(card, sourceLang, targetLang, rng)
		round.Prompts = append(round.Prompts, MatchItem{CardID: card.ID, Text: q.Text})
		round.Answers = append(round.Answers, MatchItem{CardID: card.ID, Text: q.CorrectAnswer})
	}

	rng.Shuffle(len(round.Prompts), func(i, j int) {
		round.Prompts[i], round.Prompts[j] = round.Prompts[j], round.Prompts[i]
	})
	rng.Shuffle(len(round.Answers), func(i, j int) {
		round.Answers[i], round.Answers[j] = round.Answers[j], round.Answers[i]
	})

	return round, nil
}

// Size is the number of deck entries consumed by this round.
func (r *MatchingRound) Size() int {
	return r.size
}

func (r *MatchingRound) Complete() bool {
	return r.matched == r.size
}
