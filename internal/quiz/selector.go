package quiz

import (
	"math/rand"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

// Question is the derived view over the current card and the chosen
// direction. CorrectAnswer always equals either the card's source or target
// text.
type Question struct {
	Card             models.Flashcard
	Index            int
	Total            int
	Text             string
	CorrectAnswer    string
	Direction        string
	IsSourceToTarget bool
	Mode             Mode
	Options          []string
	TimeLeft         int
}

// SelectQuestion resolves the question direction for a card against the
// configured quiz language pair. An exact match asks source→target, a
// reversed match asks target→source, and a card whose pair has nothing to do
// with the configured languages falls back to a 50/50 direction using its own
// pair as the label.
func SelectQuestion(card models.Flashcard, sourceLang, targetLang string, rng *rand.Rand) Question {
	q := Question{Card: card}

	switch {
	case card.SourceLanguage == sourceLang && card.TargetLanguage == targetLang:
		q.Text = card.SourceText
		q.CorrectAnswer = card.TargetText
		q.IsSourceToTarget = true
		q.Direction = models.LanguageName(sourceLang) + " → " + models.LanguageName(targetLang)
	case card.SourceLanguage == targetLang && card.TargetLanguage == sourceLang:
		q.Text = card.TargetText
		q.CorrectAnswer = card.SourceText
		q.IsSourceToTarget = false
		q.Direction = models.LanguageName(targetLang) + " → " + models.LanguageName(sourceLang)
	default:
		if rng.Intn(2) == 0 {
			q.Text = card.SourceText
			q.CorrectAnswer = card.TargetText
			q.IsSourceToTarget = true
			q.Direction = models.LanguageName(card.SourceLanguage) + " → " + models.LanguageName(card.TargetLanguage)
		} else {
			q.Text = card.TargetText
			q.CorrectAnswer = card.SourceText
			q.IsSourceToTarget = false
			q.Direction = models.LanguageName(card.TargetLanguage) + " → " + models.LanguageName(card.SourceLanguage)
		}
	}

	return q
}

// Distractors collects up to max wrong answers for a multiple-choice
// question: other cards' target texts in deck order, skipping the current
// card, anything equal to the correct answer and duplicates.
func Distractors(deck []models.Flashcard, q Question, max int) []string {
	seen := map[string]bool{q.CorrectAnswer: true}
	wrong := make([]string, 0, max)

	for _, card := range deck {
		if len(wrong) == max {
			break
		}
		if card.ID == q.Card.ID {
			continue
		}
		if seen[card.TargetText] {
			continue
		}
		seen[card.TargetText] = true
		wrong = append(wrong, card.TargetText)
	}

	return wrong
}

// Options builds the shuffled option list for a multiple-choice question.
// The correct answer appears exactly once; with fewer than 3 distinct wrong
// answers the list is simply shorter than 4.
func Options(deck []models.Flashcard, q Question, rng *rand.Rand) []string {
	options := append([]string{q.CorrectAnswer}, Distractors(deck, q, 3)...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
