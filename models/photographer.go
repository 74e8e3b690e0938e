package models

import (
	"github.com/google/uuid"
)

// Photographer is a staff member who shoots sessions. Specialization is a
// free-text tag shown in listings; it is not used for matching.
type Photographer struct {
	Person

	Specialization string `json:"specialization"`
}

func NewPhotographer(name, phone, specialization string) *Photographer {
	return &Photographer{
		Person: Person{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: phone,
		},
		Specialization: specialization,
	}
}
