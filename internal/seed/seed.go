// Package seed holds the first-run fixtures: the data every bucket
// starts with the first time it is read. After that first read the
// store is authoritative and these values are never consulted again,
// except as the fallback served when the store is unreachable.
package seed

import "github.com/nechberman/berman/internal/models"

// DefaultSecret is assigned to every seeded account and to any user
// created without an explicit secret.
const DefaultSecret = "123"

type staffMember struct {
	name  string
	email string
	phone string
	role  string
}

// The staff roster drives both the Users and People seeds so the two
// stores start out mirrored.
var staffRoster = []staffMember{
	{name: "Moshe Berman", email: "mberman@camp.org", phone: "052-7635477", role: "Head Counselor"},
	{name: "Yehoshua Binder", email: "ybinder@camp.org", phone: "052-7646064", role: "Counselor"},
	{name: "Avraham Becker", email: "abecker@camp.org", phone: "052-7108516", role: "Logistics"},
	{name: "David Marks", email: "dmarks@camp.org", phone: "050-4187888", role: "Counselor"},
	{name: "Chagai Rotner", email: "crotner@camp.org", phone: "052-7608107", role: "Counselor"},
	{name: "Tuvia Spiegel", email: "tspiegel@camp.org", phone: "058-5007080", role: "Medic"},
	{name: "Yair Ben-Menachem", email: "ybm@camp.org", phone: "052-8612736", role: "Driver Liaison"},
	{name: "Netanel Cohen", email: "ncohen@camp.org", phone: "052-3622264", role: "Activities"},
}

type roomRoster struct {
	num      int
	students []string
}

var roomRosters = []roomRoster{
	{num: 1, students: []string{"Israel Maimon", "Yonatan Elkayam", "Shlomo Malka", "Shai Henfling"}},
	{num: 2, students: []string{"Uriel Yeshurun", "Michael Ben-Israel", "Meir Marian", "Yehuda Ben-Uliel"}},
	{num: 3, students: []string{"Meir Bar", "Ariel Deri", "Azriel Glick", "Eli Roitman"}},
	{num: 4, students: []string{"Yosef Shabtai", "Ovadia Maimoni", "Nehorai Shemesh", "Chaim Shaulov"}},
	{num: 5, students: []string{"Achiya Teri", "Yair Sainov", "Daniel Lasry", "Natan Solomonovich"}},
	{num: 6, students: []string{"Shimon Ifergan", "Yinon Danino", "David Nechmad", "Aharon Khalifi"}},
	{num: 7, students: []string{"Driver"}},
	{num: 8, students: []string{"Moshe Berman", "Yehoshua Binder"}},
}

// staffRoomThreshold separates student bunks from staff rooms in the
// roster above.
const staffRoomThreshold = 7

// Users returns the seeded login accounts: one admin plus one staff
// login per roster member, all with the default secret.
func Users() []models.User {
	users := []models.User{{
		ID:     "u_admin",
		Name:   "System Admin",
		Email:  "admin@camp.org",
		Role:   models.RoleAdmin,
		Secret: DefaultSecret,
	}}
	for i, s := range staffRoster {
		users = append(users, models.User{
			ID:     userID(i),
			Name:   s.name,
			Email:  s.email,
			Phone:  s.phone,
			Role:   models.RoleStaff,
			Secret: DefaultSecret,
		})
	}
	return users
}

// People returns the seeded directory: the staff roster followed by
// every student extracted from the bunk rosters. Students alternate
// between buses 1 and 2 by room parity.
func People() []models.Person {
	var people []models.Person
	for i, s := range staffRoster {
		people = append(people, models.Person{
			ID:    personStaffID(i),
			Name:  s.name,
			Kind:  models.KindStaff,
			Role:  s.role,
			Email: s.email,
			Phone: s.phone,
		})
	}
	for _, r := range roomRosters {
		if r.num >= staffRoomThreshold {
			continue
		}
		for j, name := range r.students {
			bus := 1
			if r.num%2 == 0 {
				bus = 2
			}
			people = append(people, models.Person{
				ID:         personStudentID(r.num, j),
				Name:       name,
				Kind:       models.KindStudent,
				RoomNumber: r.num,
				BusID:      bus,
			})
		}
	}
	return people
}

// Rooms returns the seeded bunk rosters. Student rooms rotate through
// the staff roster for the counselor in charge; staff rooms list
// their own occupants.
func Rooms() []models.Room {
	var rooms []models.Room
	for i, r := range roomRosters {
		room := models.Room{
			ID:         roomID(r.num),
			RoomNumber: r.num,
			Students:   r.students,
			Status:     models.RoomOK,
		}
		switch {
		case r.num == 7:
			room.StaffInCharge = "Driver"
			room.Notes = "Driver's room"
		case r.num >= staffRoomThreshold:
			room.StaffInCharge = joinNames(r.students)
			room.Notes = "Staff room"
		default:
			room.StaffInCharge = staffRoster[i%len(staffRoster)].name
		}
		rooms = append(rooms, room)
	}
	return rooms
}

// Events returns the seeded two-day trip schedule.
func Events() []models.CampEvent {
	return []models.CampEvent{
		{ID: "d1_1", Date: "2025-12-09", StartTime: "10:00", EndTime: "11:45", Title: "Departure from campus", Description: "Buses load at the front gate", LocationName: "Campus", WazeLink: "https://waze.com/ul?q=Camp+Campus"},
		{ID: "d1_2", Date: "2025-12-09", StartTime: "11:45", EndTime: "13:00", Title: "Brook hike and breakfast", LocationName: "HaShofet Brook", WazeLink: "https://waze.com/ul?q=Nahal+HaShofet"},
		{ID: "d1_3", Date: "2025-12-09", StartTime: "13:00", EndTime: "14:00", Title: "Drive to the hotel", LocationName: "On the road"},
		{ID: "d1_4", Date: "2025-12-09", StartTime: "14:30", EndTime: "15:30", Title: "Lunch", LocationName: "Dining hall"},
		{ID: "d1_5", Date: "2025-12-09", StartTime: "15:30", EndTime: "17:00", Title: "Room check-in", LocationName: "Lodging"},
		{ID: "d1_6", Date: "2025-12-09", StartTime: "18:00", EndTime: "19:00", Title: "Boat ride", LocationName: "Tiberias Marina", WazeLink: "https://waze.com/ul?q=Tiberias+Marina"},
		{ID: "d1_7", Date: "2025-12-09", StartTime: "21:30", EndTime: "22:00", Title: "Dinner", LocationName: "Dining hall"},
		{ID: "d1_8", Date: "2025-12-09", StartTime: "22:00", EndTime: "23:30", Title: "Grand tournament finals", LocationName: "Sports hall"},
		{ID: "d1_9", Date: "2025-12-09", StartTime: "23:30", EndTime: "23:59", Title: "Lights out", LocationName: "Rooms"},
		{ID: "d2_1", Date: "2025-12-10", StartTime: "08:30", EndTime: "09:30", Title: "Breakfast", LocationName: "Dining hall"},
		{ID: "d2_2", Date: "2025-12-10", StartTime: "11:30", EndTime: "12:30", Title: "Tzipori stream hike", LocationName: "Tzipori Stream", WazeLink: "https://waze.com/ul?q=Nahal+Tzipori"},
		{ID: "d2_3", Date: "2025-12-10", StartTime: "13:00", EndTime: "15:30", Title: "Go-karting", LocationName: "Haifa", WazeLink: "https://waze.com/ul?q=Karting+Haifa"},
		{ID: "d2_4", Date: "2025-12-10", StartTime: "18:00", EndTime: "20:30", Title: "Restaurant dinner", LocationName: "Restaurant"},
		{ID: "d2_5", Date: "2025-12-10", StartTime: "20:30", EndTime: "21:30", Title: "Return home", Description: "Estimated arrival time", LocationName: "Campus"},
	}
}

// Tasks returns the starter task list.
func Tasks() []models.Task {
	return []models.Task{
		{ID: "t1", Title: "Room inspection", Description: "Verify all students are in their rooms", AssignedTo: "Yehoshua Binder", Status: models.TaskOpen, DueDate: "2025-12-09", Category: "Discipline", CreatedBy: "admin"},
		{ID: "t2", Title: "Fix AC in room 5", Description: "Not cooling", AssignedTo: "Maintenance", Status: models.TaskOpen, DueDate: "2025-12-09", Category: "Repairs", CreatedBy: "admin"},
	}
}

// Sessions returns the roll-call checkpoints. Sessions are static
// reference data: this is the authoritative list at runtime, not a
// bucket seed.
func Sessions() []models.AttendanceSession {
	return []models.AttendanceSession{
		{ID: "att_1", Title: "Boarding at campus", Day: "Tuesday 9/12", Order: 1},
		{ID: "att_2", Title: "Leaving the brook", Day: "Tuesday 9/12", Order: 2},
		{ID: "att_3", Title: "Boarding for the boat ride", Day: "Tuesday 9/12", Order: 3},
		{ID: "att_4", Title: "Return to the hotel", Day: "Tuesday 9/12", Order: 4},
		{ID: "att_5", Title: "Morning head count", Day: "Wednesday 10/12", Order: 5},
		{ID: "att_6", Title: "Leaving for the stream", Day: "Wednesday 10/12", Order: 6},
		{ID: "att_7", Title: "Boarding for go-karting", Day: "Wednesday 10/12", Order: 7},
		{ID: "att_8", Title: "Departure for home", Day: "Wednesday 10/12", Order: 8},
	}
}

// AttendanceRecords returns the attendance bucket seed: empty, since
// marks only exist once someone takes roll.
func AttendanceRecords() []models.AttendanceRecord {
	return []models.AttendanceRecord{}
}

// Places returns the seeded vendor contacts.
func Places() []models.Place {
	return []models.Place{
		{ID: "pl1", Name: "Haifa Karting", ContactName1: "Danny", ContactPhone1: "050-1234567", PaymentMethod: models.PayCheck, PaymentStatus: models.Unpaid, Notes: "Bring a check on the day of the event"},
		{ID: "pl2", Name: "Kinneret Boats", ContactName1: "Yossi", ContactPhone1: "052-9876543", PaymentMethod: models.PayCash, PaymentStatus: models.Paid, Notes: "Deposit paid"},
	}
}

// Groups returns the seeded responsibility groups.
func Groups() []models.ResponsibilityGroup {
	return []models.ResponsibilityGroup{
		{ID: "g1", Name: "Group 1", StaffID: personStaffID(0), StudentIDs: []string{}},
	}
}
