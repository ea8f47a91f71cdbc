package utils

import "github.com/google/uuid"

// GenerateID returns a fresh UUID string for users, sessions and documents.
func GenerateID() string {
	return uuid.New().String()
}
