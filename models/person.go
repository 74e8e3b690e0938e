package models

// Person holds the identity fields shared by clients and photographers.
// Both embed it by value; there is no polymorphic behavior between the two.
type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
