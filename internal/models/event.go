package models

// CampEvent is one slot on the trip schedule.
//
// Date is a calendar date (YYYY-MM-DD); StartTime and EndTime are
// local times of day (HH:MM). They stay strings because the schedule
// is display data and never used in time arithmetic.
type CampEvent struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	LocationName string `json:"locationName"`
	WazeLink     string `json:"wazeLink,omitempty"`
}

// EntityID implements repository.Entity.
func (e CampEvent) EntityID() string { return e.ID }
