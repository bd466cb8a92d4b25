package models

import "time"

type Category string

const (
	CategoryWords     Category = "words"
	CategoryPhrases   Category = "phrases"
	CategorySentences Category = "sentences"
	CategoryTexts     Category = "texts"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWords, CategoryPhrases, CategorySentences, CategoryTexts:
		return true
	}
	return false
}

type Flashcard struct {
	ID             int64     `json:"id"`
	Category       Category  `json:"category"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	SourceText     string    `json:"sourceText"`
	TargetText     string    `json:"targetText"`
	Attempts       int       `json:"attempts"`
	Correct        int       `json:"correct"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CardStats struct {
	TotalCount   int
	LearnedCount int
}

type CardFilter struct {
	Query      string
	SourceLang string
	TargetLang string
	Letter     string
	Category   string
	Sort       string
}

func LanguageName(code string) string {
	switch code {
	case "ro":
		return "Romanian"
	case "en":
		return "English"
	case "it":
		return "Italian"
	}
	return code
}
