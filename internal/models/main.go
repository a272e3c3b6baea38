// Package models defines the data structures shared by the service, repository
// and HTTP layers.
package models

import (
	"time"

	"github.com/atinyakov/passgen/internal/strength"
)

// Generated is the outcome of a successful generation.
type Generated struct {
	// Password is the generated string.
	Password string `json:"password"`
	// Score is the checklist score in 0..6.
	Score int `json:"score"`
	// Strength is the label derived from Score.
	Strength strength.Label `json:"strength"`
}

// HistoryEntry describes one generation without the password itself.
type HistoryEntry struct {
	// ID is the unique identifier of the entry.
	ID string `json:"id"`
	// Length is the number of characters generated.
	Length int `json:"length"`
	// Classes lists the enabled character classes ("upper", "lower", ...).
	Classes []string `json:"classes"`
	// Score is the checklist score of the password.
	Score int `json:"score"`
	// Strength is the label of the password.
	Strength strength.Label `json:"strength"`
	// CreatedAt is when the password was generated.
	CreatedAt time.Time `json:"created_at"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Length  int  `json:"length"`
	Upper   bool `json:"upper"`
	Lower   bool `json:"lower"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// StrengthRequest is the body of POST /api/strength.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is returned by POST /api/strength.
type StrengthResponse struct {
	Score     int            `json:"score"`
	Strength  strength.Label `json:"strength"`
	Entropy   float64        `json:"entropy"`
	CrackTime string         `json:"crack_time"`
}
