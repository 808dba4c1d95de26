package model

import "time"

// Signup represents a single signup record captured from the landing form.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, worker) without coupling to persistence.
type Signup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
