package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an email/password account, independent of any profile row.
// It is provisioned and destroyed only by the privileged functions service.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserAccount is an identity joined with its role assignments, as listed on
// the role management screen.
type UserAccount struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Roles Roles     `json:"roles"`
}
