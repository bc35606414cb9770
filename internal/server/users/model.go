package users

import "time"

// User is a registered account. Users are created at registration and never
// updated or deleted afterwards.
type User struct {
	ID        int64
	FullName  string
	Username  string
	Email     string
	Password  string // bcrypt digest, never plaintext
	CreatedAt time.Time
}
