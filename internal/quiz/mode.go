package quiz

import "fmt"

// Mode identifies a quiz mode. Mixed is resolved to one of the base modes
// per question, so question state never carries ModeMixed itself.
type Mode string

const (
	ModeTyping         Mode = "typing"
	ModeMultipleChoice Mode = "multiple"
	ModeSentence       Mode = "sentence"
	ModeFlashcardFlip  Mode = "flashcard"
	ModeListening      Mode = "listening"
	ModeMatching       Mode = "matching"
	ModeSpeed          Mode = "speed"
	ModePronunciation  Mode = "pronunciation"
	ModeMixed          Mode = "mixed"
)

var mixedPool = []Mode{ModeTyping, ModeMultipleChoice, ModeSentence, ModeFlashcardFlip, ModeListening}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTyping, ModeMultipleChoice, ModeSentence, ModeFlashcardFlip,
		ModeListening, ModeMatching, ModeSpeed, ModePronunciation, ModeMixed:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown quiz mode: %q", s)
}

func (m Mode) Label() string {
	switch m {
	case ModeTyping:
		return "Typing Mode"
	case ModeMultipleChoice:
		return "Multiple Choice"
	case ModeSentence:
		return "Sentence Mode"
	case ModeFlashcardFlip:
		return "Flashcard Flip"
	case ModeListening:
		return "Listening Mode"
	case ModeMatching:
		return "Matching Pairs"
	case ModeSpeed:
		return "Speed Round"
	case ModePronunciation:
		return "Pronunciation"
	case ModeMixed:
		return "Mixed Mode"
	}
	return string(m)
}

// typed reports whether answers in this mode arrive as free text and a wrong
// submission keeps the question open for another try.
func (m Mode) typed() bool {
	switch m {
	case ModeTyping, ModeSentence, ModeListening, ModeSpeed:
		return true
	}
	return false
}
