package domain

import "errors"

// Role is the closed set of permissions a user can carry. Modelling it as a
// dedicated type keeps role checks exhaustive instead of comparing free-form
// strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

// User models an authenticated actor. Users are seeded out-of-band; this core
// looks them up by email (login) or id (session resolution) but never creates
// or mutates them.
//
// PasswordHash is serialized because the snapshot itself is the persistence
// format. It must never leave the process: every API response goes through
// SafeView.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Roles        []Role `json:"roles"`
}

// UserView is the credential-free projection of a User returned to clients.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
}

// SafeView strips credential material from the user.
func (u *User) SafeView() UserView {
	return UserView{ID: u.ID, Email: u.Email, Roles: u.Roles}
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin is a shortcut for the only elevated role the system supports.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
