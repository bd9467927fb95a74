package entity

import "github.com/google/uuid"

// Session is the authenticated administrative session. It is acquired at
// login and passed explicitly into usecases instead of being read from
// ambient state.
type Session struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Roles       Roles     `json:"roles"`
	AccessToken string    `json:"-"`
}

// Capabilities is the per-request capability set derived from the session's
// roles, checked once per usecase invocation.
type Capabilities struct {
	CanCreate bool `json:"can_create"`
	CanDelete bool `json:"can_delete"`
}

// Capabilities derives the capability set. Only administrators mutate entities.
func (s *Session) Capabilities() Capabilities {
	if s == nil {
		return Capabilities{}
	}

	admin := s.Roles.Contains(RoleAdmin)

	return Capabilities{
		CanCreate: admin,
		CanDelete: admin,
	}
}

// IsAuthenticated reports whether the session carries a usable credential.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != uuid.Nil && s.AccessToken != ""
}
