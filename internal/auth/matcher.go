// Package auth resolves login credentials against the user store and
// issues session tokens.
//
// Secrets are stored and compared in plaintext. This is a documented
// weakness inherited from the product's single-device deployment
// model, not a pattern to copy: the store lives on the operator's own
// device and the secrets gate UI access, not data confidentiality.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/nechberman/berman/internal/models"
)

var (
	// ErrInvalidCredentials is returned when no user matches the
	// identifier and secret. Callers surface it as a generic
	// invalid-credentials message.
	ErrInvalidCredentials = errors.New("invalid identifier or secret")
)

// UserSource is the slice of the user repository the matcher needs.
type UserSource interface {
	List(ctx context.Context) []models.User
}

// Matcher resolves a login identifier plus secret against the user
// store. The identifier may be an email, a phone number, or a display
// name; phone comparison ignores separator formatting.
type Matcher struct {
	users UserSource
}

// NewMatcher creates a matcher over the given user source.
func NewMatcher(users UserSource) *Matcher {
	return &Matcher{users: users}
}

// Authenticate returns the first user whose email, phone, or name
// matches the identifier and whose secret matches exactly.
func (m *Matcher) Authenticate(ctx context.Context, identifier, secret string) (models.User, error) {
	normalized := NormalizePhone(identifier)
	for _, u := range m.users.List(ctx) {
		if u.Secret != secret {
			continue
		}
		if u.Email == identifier || u.Name == identifier {
			return u, nil
		}
		if u.Phone != "" && NormalizePhone(u.Phone) == normalized {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Users exposes the matcher's view of the user store, for callers
// that need to resolve an already-authenticated id.
func (m *Matcher) Users(ctx context.Context) []models.User {
	return m.users.List(ctx)
}

// NormalizePhone strips the separators people type into phone numbers
// so "052-7635477" and "0527635477" compare equal.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', ' ', '(', ')':
			return -1
		}
		return r
	}, s)
}
