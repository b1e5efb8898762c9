package entities

import "time"

// User is a portal account. CredentialHash is a bcrypt hash of the seeded
// credential.
type User struct {
	ID             string `json:"id"`
	CredentialHash string `json:"-"`
	DisplayName    string `json:"display_name"`
	Roles          []Role `json:"roles"`
	DDOCode        string `json:"ddo_code,omitempty"`
}

func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the authentication context of one login.
//
// Exactly one of Roles is active at a time; it decides which records the
// session may act on.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Roles       []Role    `json:"roles"`
	ActiveRole  Role      `json:"active_role"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Token       string    `json:"-"`
}

func (s Session) HasRole(role Role) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
