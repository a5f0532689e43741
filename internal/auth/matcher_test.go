package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/nechberman/berman/internal/models"
)

type staticUsers []models.User

func (s staticUsers) List(ctx context.Context) []models.User { return s }

var testUsers = staticUsers{
	{ID: "u1", Name: "Moshe Berman", Email: "mb@camp.org", Phone: "052-7635477", Role: models.RoleStaff, Secret: "123"},
	{ID: "u2", Name: "Admin", Email: "admin@camp.org", Role: models.RoleAdmin, Secret: "s3cret"},
}

func TestAuthenticateMatchesAnyIdentifier(t *testing.T) {
	m := NewMatcher(testUsers)
	ctx := context.Background()

	for _, identifier := range []string{"mb@camp.org", "Moshe Berman", "052-7635477", "0527635477", "(052) 763 5477"} {
		user, err := m.Authenticate(ctx, identifier, "123")
		if err != nil {
			t.Errorf("Authenticate(%q): unexpected error %v", identifier, err)
			continue
		}
		if user.ID != "u1" {
			t.Errorf("Authenticate(%q) resolved %s, want u1", identifier, user.ID)
		}
	}
}

func TestAuthenticateRequiresExactSecret(t *testing.T) {
	m := NewMatcher(testUsers)
	ctx := context.Background()

	if _, err := m.Authenticate(ctx, "mb@camp.org", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong secret, got %v", err)
	}
	if _, err := m.Authenticate(ctx, "mb@camp.org", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for empty secret, got %v", err)
	}
}

func TestAuthenticateUnknownIdentifier(t *testing.T) {
	m := NewMatcher(testUsers)

	if _, err := m.Authenticate(context.Background(), "nobody@camp.org", "123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"052-7635477":    "0527635477",
		"052 763 5477":   "0527635477",
		"(052) 7635477":  "0527635477",
		"0527635477":     "0527635477",
		"admin@camp.org": "admin@camp.org",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}
