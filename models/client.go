package models

import (
	"github.com/google/uuid"
)

// Client is a studio customer. Phone acts as the natural dedup key.
// IsRegular is the loyalty flag: once set it is never cleared by business
// logic, and it entitles the client to a 10% discount on new orders.
type Client struct {
	Person

	Email     string `json:"email"`
	IsRegular bool   `json:"isRegular"`
}

func NewClient(name, phone, email string, isRegular bool) *Client {
	return &Client{
		Person: Person{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: phone,
		},
		Email:     email,
		IsRegular: isRegular,
	}
}
