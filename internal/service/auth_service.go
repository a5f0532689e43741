package service

import (
	"context"
	"log/slog"

	"github.com/nechberman/berman/internal/auth"
	"github.com/nechberman/berman/internal/models"
)

// AuthService orchestrates one login attempt: resolve the credential
// against the user store, then issue a session token.
type AuthService struct {
	matcher  *auth.Matcher
	sessions *auth.SessionManager
	logger   *slog.Logger
}

// LoginResult is a successful login: the resolved user and a signed
// session token.
type LoginResult struct {
	User  models.User
	Token string
}

// NewAuthService creates a new authentication service.
func NewAuthService(matcher *auth.Matcher, sessions *auth.SessionManager, logger *slog.Logger) *AuthService {
	return &AuthService{matcher: matcher, sessions: sessions, logger: logger}
}

// Login authenticates an identifier (email, phone, or display name)
// plus secret. Failures come back as auth.ErrInvalidCredentials; the
// caller shows them as a generic invalid-credentials message.
func (s *AuthService) Login(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	if identifier == "" || secret == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := s.matcher.Authenticate(ctx, identifier, secret)
	if err != nil {
		s.logger.Warn("login failed", "identifier", identifier)
		return nil, err
	}

	token, err := s.sessions.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate session token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &LoginResult{User: user, Token: token}, nil
}

// CurrentUser resolves a session token back to its user, or an error
// if the token is invalid, expired, or the account no longer exists.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range s.matcher.Users(ctx) {
		if u.ID == claims.UserID {
			return u, nil
		}
	}
	return models.User{}, auth.ErrInvalidCredentials
}
