package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/validation"
)

const minPasswordLen = 6

// UserType distinguishes who an account belongs to.
type UserType string

const (
	UserTypeJobSeeker UserType = "jobseeker"
	UserTypeEmployer  UserType = "employer"
)

// UserTypes returns every valid account type.
func UserTypes() []string {
	return []string{string(UserTypeJobSeeker), string(UserTypeEmployer)}
}

// Valid reports whether the user type is supported.
func (t UserType) Valid() bool {
	return t == UserTypeJobSeeker || t == UserTypeEmployer
}

// User is an account record. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"       db:"id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email"    db:"email"`
	UserType     UserType  `json:"userType" db:"user_type"`
	PasswordHash string    `json:"-"        db:"password_hash"`
	CreatedAt    time.Time `json:"-"        db:"created_at"`
}

// SignupRequest carries the payload for registering an account.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// Normalize trims fields and lowercases the email. The password is left
// untouched; whitespace may be intentional.
func (r *SignupRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.UserType = strings.TrimSpace(r.UserType)
}

// Validate checks the request and returns all field errors at once.
func (r *SignupRequest) Validate() validation.Errors {
	return validation.NewFields().
		Check("fullName", r.FullName, validation.Required("Full name")).
		Check("email", r.Email, validation.Required("Email"), validation.Email("Email")).
		Check("password", r.Password, validation.Required("Password"), validation.MinLen("Password", minPasswordLen)).
		Check("userType", r.UserType, validation.Required("User type"), validation.OneOf("User type", UserTypes())).
		Errors()
}

// LoginRequest carries the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims and lowercases the email.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks the request and returns all field errors at once.
func (r *LoginRequest) Validate() validation.Errors {
	return validation.NewFields().
		Check("email", r.Email, validation.Required("Email"), validation.Email("Email")).
		Check("password", r.Password, validation.Required("Password")).
		Errors()
}
