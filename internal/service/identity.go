// Package service implements the behaviors layered over plain entity
// CRUD: identity mirroring, attendance merging, task lifecycle, and
// login.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nechberman/berman/internal/models"
	"github.com/nechberman/berman/internal/repository"
	"github.com/nechberman/berman/internal/seed"
)

// IdentityService owns the User and Person write paths and keeps the
// two stores mirrored on their shared email key: a staff Person with
// an email always has exactly one matching User, and deleting either
// side removes the other.
type IdentityService struct {
	users  *repository.Repository[models.User]
	people *repository.Repository[models.Person]
}

// NewIdentityService creates an identity service over the user and
// person repositories.
func NewIdentityService(users *repository.Repository[models.User], people *repository.Repository[models.Person]) *IdentityService {
	return &IdentityService{users: users, people: people}
}

// Users returns every login account.
func (s *IdentityService) Users(ctx context.Context) []models.User {
	return s.users.List(ctx)
}

// SaveUser upserts a login account.
//
// An empty secret on an existing account preserves the stored secret,
// so admin edits never silently wipe a password. A brand-new account
// with no secret gets the default.
func (s *IdentityService) SaveUser(ctx context.Context, user models.User) {
	if existing, ok := s.users.Get(ctx, user.ID); ok {
		if user.Secret == "" {
			user.Secret = existing.Secret
		}
	} else if user.Secret == "" {
		user.Secret = seed.DefaultSecret
	}
	s.users.Upsert(ctx, user)
	slog.Info("user saved", "user_id", user.ID)
}

// DeleteUser removes a login account and any directory Person sharing
// its email, keeping the mirror symmetric regardless of which side
// initiates the deletion. Deleting an unknown id is a no-op.
func (s *IdentityService) DeleteUser(ctx context.Context, id string) {
	user, ok := s.users.Get(ctx, id)
	s.users.Delete(ctx, id)
	if !ok || user.Email == "" {
		return
	}

	people := s.people.List(ctx)
	kept := people[:0]
	for _, p := range people {
		if p.Email != user.Email {
			kept = append(kept, p)
		}
	}
	if len(kept) != len(people) {
		s.people.Replace(ctx, kept)
		slog.Info("mirrored person removed with user", "user_id", id, "email", user.Email)
	}
}

// People returns every directory entry.
func (s *IdentityService) People(ctx context.Context) []models.Person {
	return s.people.List(ctx)
}

// SavePerson upserts a directory entry and, for staff with an email,
// mirrors it into the user store: an existing User with that email
// gets the person's name and phone (role and secret stay untouched,
// those are owned by admin edits on the User side), and a missing one
// is created as a staff login with the default secret.
//
// Two Persons sharing one email are not guarded against; the mirrored
// User reflects whichever was saved last.
func (s *IdentityService) SavePerson(ctx context.Context, person models.Person) {
	s.people.Upsert(ctx, person)

	if person.Kind != models.KindStaff || person.Email == "" {
		return
	}

	users := s.users.List(ctx)
	for i := range users {
		if users[i].Email == person.Email {
			users[i].Name = person.Name
			users[i].Phone = person.Phone
			s.users.Replace(ctx, users)
			slog.Info("mirrored user updated", "email", person.Email)
			return
		}
	}

	s.users.Upsert(ctx, models.User{
		ID:     uuid.New().String(),
		Name:   person.Name,
		Email:  person.Email,
		Phone:  person.Phone,
		Role:   models.RoleStaff,
		Secret: seed.DefaultSecret,
	})
	slog.Info("mirrored user created", "email", person.Email)
}

// DeletePerson removes a directory entry and, if it carried an email,
// the login account sharing that email. Deleting an unknown id is a
// no-op.
func (s *IdentityService) DeletePerson(ctx context.Context, id string) {
	person, ok := s.people.Get(ctx, id)
	s.people.Delete(ctx, id)
	if !ok || person.Email == "" {
		return
	}

	users := s.users.List(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.Email != person.Email {
			kept = append(kept, u)
		}
	}
	if len(kept) != len(users) {
		s.users.Replace(ctx, kept)
		slog.Info("mirrored user removed with person", "person_id", id, "email", person.Email)
	}
}

// UpdatePeople applies a batch of directory edits in one store write.
// Records whose ids are not already present are ignored; bulk edits
// update existing students (bus or room moves), they do not create.
func (s *IdentityService) UpdatePeople(ctx context.Context, updates []models.Person) {
	if len(updates) == 0 {
		return
	}
	byID := make(map[string]models.Person, len(updates))
	for _, p := range updates {
		byID[p.ID] = p
	}

	people := s.people.List(ctx)
	for i := range people {
		if updated, ok := byID[people[i].ID]; ok {
			people[i] = updated
		}
	}
	s.people.Replace(ctx, people)
}
