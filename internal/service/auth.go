package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck/internal/core"
	"github.com/jobdeck/jobdeck/internal/data"
	domainauth "github.com/jobdeck/jobdeck/internal/domain/auth"
	"github.com/jobdeck/jobdeck/internal/domain/model"
	apperrors "github.com/jobdeck/jobdeck/internal/errors"
	"github.com/jobdeck/jobdeck/internal/ports"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials is returned when the email or password does not
// match. Callers must not reveal which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

var errSessionExpired = errors.New("session expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users      core.UserRepository
	Sessions   ports.SessionStore
	SessionTTL time.Duration
}

// AuthService orchestrates account registration, sign-in, and session persistence.
type AuthService struct {
	users      core.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		users:      opts.Users,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// Signup registers an account and opens a session for it.
func (s *AuthService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, *domainauth.Session, error) {
	if req == nil {
		return nil, nil, apperrors.Validation("request body is required")
	}
	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return nil, nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.FullName, req.Email, model.UserType(req.UserType), string(hash))
	if err != nil {
		if errors.Is(err, data.ErrEmailExists) {
			return nil, nil, apperrors.ValidationField("email", "Email already registered")
		}
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies credentials and opens a session. The same error covers an
// unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, *domainauth.Session, error) {
	if req == nil {
		return nil, nil, apperrors.Validation("request body is required")
	}
	req.Normalize()
	if errs := req.Validate(); errs != nil {
		return nil, nil, errs
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthService) openSession(ctx context.Context, user *model.User) (*domainauth.Session, error) {
	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		UserType:  user.UserType,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
