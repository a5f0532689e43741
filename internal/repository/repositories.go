package repository

import (
	"github.com/nechberman/berman/internal/models"
	"github.com/nechberman/berman/internal/seed"
	"github.com/nechberman/berman/internal/storage"
)

// Bucket keys, one per entity kind. Renaming one orphans the data
// saved under the old key.
const (
	KeyUsers      = "users"
	KeyPeople     = "people"
	KeyRooms      = "rooms"
	KeyEvents     = "events"
	KeyTasks      = "tasks"
	KeyAttendance = "attendance_records"
	KeyPlaces     = "places"
	KeyGroups     = "groups"
)

// Repositories bundles every entity repository over one store.
//
// AttendanceRecord is the odd one out: it has no synthetic id, so it
// gets a raw bucket and the attendance service owns its composite-key
// semantics. AttendanceSession is static reference data and has no
// bucket at all.
type Repositories struct {
	Users      *Repository[models.User]
	People     *Repository[models.Person]
	Rooms      *Repository[models.Room]
	Events     *Repository[models.CampEvent]
	Tasks      *Repository[models.Task]
	Places     *Repository[models.Place]
	Groups     *Repository[models.ResponsibilityGroup]
	Attendance *storage.Bucket[models.AttendanceRecord]
}

// NewRepositories wires every entity bucket to its first-run seed.
func NewRepositories(kv storage.KeyValue) *Repositories {
	return &Repositories{
		Users:      New(kv, KeyUsers, seed.Users),
		People:     New(kv, KeyPeople, seed.People),
		Rooms:      New(kv, KeyRooms, seed.Rooms),
		Events:     New(kv, KeyEvents, seed.Events),
		Tasks:      New(kv, KeyTasks, seed.Tasks),
		Places:     New(kv, KeyPlaces, seed.Places),
		Groups:     New(kv, KeyGroups, seed.Groups),
		Attendance: storage.NewBucket(kv, KeyAttendance, seed.AttendanceRecords),
	}
}
