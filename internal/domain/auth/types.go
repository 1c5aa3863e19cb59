// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.
package auth

import (
	"time"

	"github.com/jobdeck/jobdeck/internal/domain/model"
)

// Session is the server-side record persisted for a signed-in user.
// ID is an opaque session identifier carried in a cookie.
type Session struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	UserType  model.UserType `json:"user_type"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// IsEmployer reports whether the session belongs to an employer account.
func (s Session) IsEmployer() bool { return s.UserType == model.UserTypeEmployer }
