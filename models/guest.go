package models

import "time"

// Guest is the minimal guest record the front desk needs on a reservation.
// The full guest profile is owned by the guest service.
type Guest struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"first_name" json:"first_name"`
	LastName  string    `bson:"last_name" json:"last_name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	IDNumber  string    `bson:"id_number,omitempty" json:"id_number,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName returns the guest's display name.
func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
