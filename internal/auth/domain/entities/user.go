// Package entities contains the core user domain model.
package entities

import (
	"errors"
	"time"
)

// User domain errors.
var (
	ErrUserNotFound = errors.New("user not found")
)

// User represents a registered account. PasswordHash never leaves the
// auth service boundary; every outgoing representation goes through View.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserView is the password-stripped representation of a user, used both
// in authentication responses and as the request principal.
type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View returns the password-stripped representation of the user.
func (u *User) View() *UserView {
	return &UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
