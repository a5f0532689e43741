package seed

import (
	"testing"

	"github.com/nechberman/berman/internal/models"
)

func TestStaffUsersAndPeopleStartMirrored(t *testing.T) {
	users := Users()
	byEmail := map[string]models.User{}
	for _, u := range users {
		byEmail[u.Email] = u
	}

	for _, p := range People() {
		if p.Kind != models.KindStaff {
			continue
		}
		u, ok := byEmail[p.Email]
		if !ok {
			t.Errorf("staff person %s has no seeded login for %s", p.Name, p.Email)
			continue
		}
		if u.Name != p.Name || u.Phone != p.Phone {
			t.Errorf("seed mirror mismatch for %s: user %+v", p.Email, u)
		}
	}
}

func TestSeedIDsAreUnique(t *testing.T) {
	check := func(t *testing.T, ids []string) {
		t.Helper()
		seen := map[string]bool{}
		for _, id := range ids {
			if id == "" {
				t.Error("empty seed id")
			}
			if seen[id] {
				t.Errorf("duplicate seed id %s", id)
			}
			seen[id] = true
		}
	}

	var ids []string
	for _, u := range Users() {
		ids = append(ids, u.ID)
	}
	check(t, ids)

	ids = ids[:0]
	for _, p := range People() {
		ids = append(ids, p.ID)
	}
	check(t, ids)

	ids = ids[:0]
	for _, s := range Sessions() {
		ids = append(ids, s.ID)
	}
	check(t, ids)
}

func TestStudentsCarryRoomAndBus(t *testing.T) {
	for _, p := range People() {
		if p.Kind != models.KindStudent {
			continue
		}
		if p.RoomNumber == 0 {
			t.Errorf("student %s missing room assignment", p.Name)
		}
		if p.BusID != 1 && p.BusID != 2 {
			t.Errorf("student %s has bus %d, want 1 or 2", p.Name, p.BusID)
		}
	}
}

func TestEveryUserHasASecret(t *testing.T) {
	for _, u := range Users() {
		if u.Secret == "" {
			t.Errorf("seeded user %s has no secret", u.Email)
		}
	}
}
