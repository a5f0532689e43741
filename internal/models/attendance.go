package models

// AttendanceStatus is a single roll-call mark.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceNone    AttendanceStatus = "none"
)

// AttendanceSession is one roll-call checkpoint (e.g. "boarding the
// buses"). Sessions are static reference data seeded once and never
// mutated at runtime; Day groups them for display and Order sorts
// them within the trip.
type AttendanceSession struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Day   string `json:"day"`
	Order int    `json:"order"`
}

// AttendanceRecord is one student's mark for one session. It has no
// synthetic id: the pair (SessionID, StudentID) is its identity, and
// at most one record exists per pair.
type AttendanceRecord struct {
	SessionID string           `json:"sessionId"`
	StudentID string           `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
	Note      string           `json:"note"`

	// Timestamp is the Unix-millisecond instant of the mark.
	Timestamp int64 `json:"timestamp"`
}

// Key returns the composite identity used for upsert and merge.
func (r AttendanceRecord) Key() string {
	return r.SessionID + "_" + r.StudentID
}
