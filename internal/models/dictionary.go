package models

import "time"

type DictionaryEntry struct {
	ID          int64     `json:"id"`
	SourceLang  string    `json:"sourceLang"`
	TargetLang  string    `json:"targetLang"`
	SourceWord  string    `json:"sourceWord"`
	TargetWord  string    `json:"targetWord"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DictionaryFilter struct {
	Query      string
	SourceLang string
	TargetLang string
	Letter     string
	Sort       string
}
