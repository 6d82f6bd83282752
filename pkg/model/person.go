package model

// Person is a buyer. The record is owned by the caller; the engine only
// reads and debits Balance, and fills PreviousBalance and LastCharge on
// a successful booking so callers can report the charge. Those two
// fields are derived state, never authoritative.
type Person struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Surname     string  `json:"surname" validate:"required,min=1,max=100"`
	DocumentID  string  `json:"document_id" validate:"required,alphanum,len=7"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Balance     float64 `json:"balance" validate:"gte=0"`

	PreviousBalance float64 `json:"previous_balance,omitempty" validate:"-"`
	LastCharge      float64 `json:"last_charge,omitempty" validate:"-"`
}

// Occupant is the subset of buyer identity written onto a booked seat,
// plus the balance recorded at booking time.
type Occupant struct {
	Name        string
	Surname     string
	DocumentID  string
	DateOfBirth string
	Balance     float64
}

// OccupantAt captures the identity that will be written onto a seat,
// with the balance the buyer would hold after paying price.
func (p *Person) OccupantAt(price float64) Occupant {
	return Occupant{
		Name:        p.Name,
		Surname:     p.Surname,
		DocumentID:  p.DocumentID,
		DateOfBirth: p.DateOfBirth,
		Balance:     RoundToCents(p.Balance - price),
	}
}
