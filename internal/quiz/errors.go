package quiz

import "errors"

var (
	ErrNoCardsAvailable         = errors.New("no cards available for quiz")
	ErrInsufficientCardsForMode = errors.New("not enough cards for a matching round")
	ErrQuizFinished             = errors.New("quiz already finished")
	ErrQuestionClosed           = errors.New("question already answered")
	ErrModeMismatch             = errors.New("action not available in this quiz mode")
	ErrOptionDisabled           = errors.New("option already tried")
)
