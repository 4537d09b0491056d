package models

import "time"

// User is an account record. Optional profile fields are pointers so that
// NULL columns and absent JSON fields stay distinguishable from empty strings.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Firstname    *string   `json:"firstname,omitempty"`
	Lastname     *string   `json:"lastname,omitempty"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"` // don't expose hash
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserUpdate carries the fields of a partial profile update. Nil means
// "leave unchanged". PasswordHash is set by the service after re-hashing.
type UserUpdate struct {
	Username     *string
	Firstname    *string
	Lastname     *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Firstname == nil && u.Lastname == nil &&
		u.Email == nil && u.PasswordHash == nil && u.IsAdmin == nil
}
