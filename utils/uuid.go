package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used for product handles and session tokens
func GenerateID() string {
	return uuid.New().String()
}
