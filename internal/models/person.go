package models

// PersonKind separates campers from staff in the directory.
type PersonKind string

const (
	KindStudent PersonKind = "student"
	KindStaff   PersonKind = "staff"
)

// Person is a directory entry. Students carry room and bus
// assignments; staff carry contact details and optionally correspond
// to exactly one User via a shared email.
type Person struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind PersonKind `json:"type"`

	// Role is a free-text staff title (e.g. "Counselor", "Logistics").
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// RoomNumber and BusID are student-only assignments.
	RoomNumber int `json:"roomNumber,omitempty"`
	BusID      int `json:"busId,omitempty"`
}

// EntityID implements repository.Entity.
func (p Person) EntityID() string { return p.ID }
