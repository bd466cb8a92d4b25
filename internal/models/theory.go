package models

import "time"

type TheoryMaterial struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	Description string    `json:"description"`
	FileName    string    `json:"file,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
