package models

import "time"

// User is an account that can hold sessions. Role is copied into every
// token issued for the user.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash []byte
	CreatedAt    time.Time
}
