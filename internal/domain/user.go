package domain

import "time"

// User is the domain entity for an account. Email doubles as the opaque
// identifier other users put in a list's SharedWith set.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
