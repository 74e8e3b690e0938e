package models

import (
	"github.com/google/uuid"
)

// User is a staff account that can log in to the backend.
// Role is 'owner' or 'employee'.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

func NewUser(name, email, phone, passwordHash, role string) *User {
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
	}
}
