package quiz

import (
	"math/rand"
	"testing"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCard(id int64, src, tgt string) models.Flashcard {
	return models.Flashcard{
		ID:             id,
		Category:       models.CategoryWords,
		SourceLanguage: "ro",
		TargetLanguage: "it",
		SourceText:     src,
		TargetText:     tgt,
	}
}

func TestSelectQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		card          models.Flashcard
		sourceLang    string
		targetLang    string
		wantText      string
		wantAnswer    string
		wantForward   bool
		wantDirection string
	}{
		{
			name:          "card pair matches configured pair",
			card:          testCard(1, "casă", "casa"),
			sourceLang:    "ro",
			targetLang:    "it",
			wantText:      "casă",
			wantAnswer:    "casa",
			wantForward:   true,
			wantDirection: "Romanian → Italian",
		},
		{
			name:          "card pair is reversed",
			card:          testCard(1, "casă", "casa"),
			sourceLang:    "it",
			targetLang:    "ro",
			wantText:      "casa",
			wantAnswer:    "casă",
			wantForward:   false,
			wantDirection: "Italian → Romanian",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(1))
			q := SelectQuestion(tt.card, tt.sourceLang, tt.targetLang, rng)

			assert.Equal(t, tt.wantText, q.Text)
			assert.Equal(t, tt.wantAnswer, q.CorrectAnswer)
			assert.Equal(t, tt.wantForward, q.IsSourceToTarget)
			assert.Equal(t, tt.wantDirection, q.Direction)
		})
	}
}

func TestSelectQuestion_unrelatedPair(t *testing.T) {
	t.Parallel()

	card := models.Flashcard{
		ID:             1,
		SourceLanguage: "en",
		TargetLanguage: "fr",
		SourceText:     "house",
		TargetText:     "maison",
	}

	rng := rand.New(rand.NewSource(1))

	// The fallback direction is random but always uses one side of the card
	// as the question and the other as the answer.
	for range 20 {
		q := SelectQuestion(card, "ro", "it", rng)

		if q.IsSourceToTarget {
			assert.Equal(t, "house", q.Text)
			assert.Equal(t, "maison", q.CorrectAnswer)
		} else {
			assert.Equal(t, "maison", q.Text)
			assert.Equal(t, "house", q.CorrectAnswer)
		}
	}
}

func TestDistractors(t *testing.T) {
	t.Parallel()

	deck := []models.Flashcard{
		testCard(1, "casă", "casa"),
		testCard(2, "apă", "acqua"),
		testCard(3, "pâine", "pane"),
		testCard(4, "lapte", "latte"),
		testCard(5, "vin", "vino"),
	}

	rng := rand.New(rand.NewSource(1))
	q := SelectQuestion(deck[0], "ro", "it", rng)

	wrong := Distractors(deck, q, 3)

	require.Len(t, wrong, 3)
	assert.Equal(t, []string{"acqua", "pane", "latte"}, wrong)
	assert.NotContains(t, wrong, q.CorrectAnswer)
}

func TestDistractors_skipsDuplicates(t *testing.T) {
	t.Parallel()

	deck := []models.Flashcard{
		testCard(1, "casă", "casa"),
		testCard(2, "apă", "acqua"),
		testCard(3, "apa", "acqua"),
		testCard(4, "cămin", "casa"),
	}

	rng := rand.New(rand.NewSource(1))
	q := SelectQuestion(deck[0], "ro", "it", rng)

	wrong := Distractors(deck, q, 3)

	assert.Equal(t, []string{"acqua"}, wrong)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	deck := []models.Flashcard{
		testCard(1, "casă", "casa"),
		testCard(2, "apă", "acqua"),
		testCard(3, "pâine", "pane"),
		testCard(4, "lapte", "latte"),
		testCard(5, "vin", "vino"),
	}

	rng := rand.New(rand.NewSource(1))
	q := SelectQuestion(deck[0], "ro", "it", rng)

	options := Options(deck, q, rng)

	require.Len(t, options, 4)

	var correct int
	for _, opt := range options {
		if opt == q.CorrectAnswer {
			correct++
		}
	}
	assert.Equal(t, 1, correct)
}

func TestOptions_smallDeck(t *testing.T) {
	t.Parallel()

	deck := []models.Flashcard{
		testCard(1, "casă", "casa"),
		testCard(2, "apă", "acqua"),
	}

	rng := rand.New(rand.NewSource(1))
	q := SelectQuestion(deck[0], "ro", "it", rng)

	options := Options(deck, q, rng)

	require.Len(t, options, 2)
	assert.Contains(t, options, "casa")
	assert.Contains(t, options, "acqua")
}
