package models

// ResponsibilityGroup assigns a set of students to one staff member
// for head counts and supervision. StaffID and StudentIDs reference
// directory Person records.
type ResponsibilityGroup struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	StaffID    string   `json:"staffId"`
	StudentIDs []string `json:"studentIds"`
}

// EntityID implements repository.Entity.
func (g ResponsibilityGroup) EntityID() string { return g.ID }
