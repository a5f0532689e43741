package models

// RoomStatus is the inspection state of a room.
type RoomStatus string

const (
	RoomOK    RoomStatus = "ok"
	RoomCheck RoomStatus = "check"
	RoomIssue RoomStatus = "issue"
)

// Room is a bunk roster. Students are stored as display names in bunk
// order; StaffInCharge is free text (a name, not a foreign key).
type Room struct {
	ID            string     `json:"id"`
	RoomNumber    int        `json:"roomNumber"`
	Students      []string   `json:"students"`
	StaffInCharge string     `json:"staffInCharge"`
	Status        RoomStatus `json:"status"`
	Notes         string     `json:"notes"`
}

// EntityID implements repository.Entity.
func (r Room) EntityID() string { return r.ID }
