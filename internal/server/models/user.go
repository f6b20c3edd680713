// Package models defines the persistent records of the insight server.
package models

import "time"

// User is one credential-store record. Email is unique across all users.
// PasswordHash is a bcrypt hash; the raw password is never stored.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Contact      string
	CreatedAt    time.Time
}
