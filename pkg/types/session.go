package types

import (
	"errors"
	"time"
)

// Session is one saved planning session: a named case bound to a
// product line and side, carrying a history of assembly
// configurations.
type Session struct {
	SessionID string    `json:"session_id"` // UUID v7, generated on creation.
	Name      string    `json:"name"`       // Case name chosen by the planner (required, non-empty).
	Product   string    `json:"product"`    // Product line the session plans with.
	Side      Side      `json:"side"`       // Side the session plans for.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session validation errors.
var (
	ErrSessionNameEmpty    = errors.New("session name must not be empty")
	ErrSessionProductEmpty = errors.New("session product must not be empty")
)

// Validate checks that the session is well-formed. It returns a
// sentinel error from this package on failure.
func (s Session) Validate() error {
	if s.Name == "" {
		return ErrSessionNameEmpty
	}
	if s.Product == "" {
		return ErrSessionProductEmpty
	}
	return nil
}
