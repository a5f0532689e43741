package models

// UserRole distinguishes admins from regular staff accounts.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User represents a login account.
//
// Email doubles as the join key to a staff Person in the directory; it
// is not enforced unique by the store.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Name is the display name, also accepted as a login identifier.
	Name string `json:"name"`

	// Email is the primary login identifier and the link to the
	// directory Person with the same address.
	Email string `json:"email"`

	// Phone is optional and accepted as a login identifier after
	// separator normalization.
	Phone string `json:"phone,omitempty"`

	Role UserRole `json:"role"`

	// Secret is the login secret, stored and compared in plaintext.
	// Saving a user with an empty secret preserves the stored one.
	Secret string `json:"password,omitempty"`
}

// EntityID implements repository.Entity.
func (u User) EntityID() string { return u.ID }
