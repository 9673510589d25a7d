package models

import (
	"strings"

	"github.com/google/uuid"
)

// User matches the users table created by the seed.
// Columns: id, name, email (NOT NULL UNIQUE), password (bcrypt hash)
type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"` // plaintext, only on fixtures
	// PasswordHash is what gets stored in the password column.
	PasswordHash string `json:"password_hash,omitempty"`
}

func (u *User) Prepare() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}
