package models

import (
	"github.com/google/uuid"
)

// Photo is a file delivered as part of an order. Photos never exist outside
// their parent order.
type Photo struct {
	ID       string `json:"id"`
	FilePath string `json:"filePath"`
}

func NewPhoto(filePath string) Photo {
	return Photo{
		ID:       uuid.NewString(),
		FilePath: filePath,
	}
}
