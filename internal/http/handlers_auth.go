package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/jobdeck/jobdeck/internal/domain/auth"
	"github.com/jobdeck/jobdeck/internal/domain/model"
	"github.com/jobdeck/jobdeck/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.User, *domainauth.Session, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.User, *domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for account and session operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Signup handles account registration. A fresh session is opened for the
// new account.
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, session, err := h.Svc.Signup(r.Context(), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, r, session)
	WriteDataMessage(w, http.StatusCreated, user, "User registered successfully")
}

// Login handles sign-in. Unknown email and wrong password produce the same
// response.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, session, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteErrorMsg(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, r, session)
	WriteDataMessage(w, http.StatusOK, user, "Login successful")
}

// Logout handles sign-out. It is idempotent: signing out without a session
// still succeeds.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().Error("logout failed", slog.Any("error", logoutErr))
			WriteErrorMsg(w, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	h.clearSessionCookie(w, r)
	WriteMessage(w, http.StatusOK, "Logged out successfully")
}

// Status reports the signed-in account, or 401 when there is no valid session.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromRequest(r, h.Svc)
	if session == nil {
		WriteErrorMsg(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	WriteData(w, http.StatusOK, map[string]any{
		"id":        session.UserID,
		"fullName":  session.FullName,
		"email":     session.Email,
		"userType":  session.UserType,
		"expiresAt": session.ExpiresAt,
	})
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, session *domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
}

// clearSessionCookie expires the session cookie, mirroring the attributes
// used when setting it so browsers actually delete it.
func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}
