package models

// PaymentMethod is how a vendor gets paid.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCheck    PaymentMethod = "check"
	PayTransfer PaymentMethod = "transfer"
	PayOther    PaymentMethod = "other"
)

// PaymentStatus tracks whether a vendor has been paid.
type PaymentStatus string

const (
	Paid   PaymentStatus = "paid"
	Unpaid PaymentStatus = "unpaid"
)

// Place is a vendor or destination contact card.
type Place struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	ContactName1  string        `json:"contactName1"`
	ContactPhone1 string        `json:"contactPhone1"`
	ContactName2  string        `json:"contactName2,omitempty"`
	ContactPhone2 string        `json:"contactPhone2,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Notes         string        `json:"notes"`
}

// EntityID implements repository.Entity.
func (p Place) EntityID() string { return p.ID }
