// Package models defines the persisted record shapes of the EaseShop core:
// users, orders, reset tokens, cart items and product reviews. JSON tags
// mirror the slot layout inherited from the original storefront so existing
// stores stay readable.
package models

import "time"

// User is a registered account in the user directory.
//
// Email is the uniqueness key (case-sensitive exact match, checked at
// registration only). PasswordHash holds the Argon2id encoding produced by
// cryptox.HashPassword; it is stripped before the record is embedded in a
// session.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Province     string    `json:"province"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Snapshot returns a copy of the user with the credential removed, suitable
// for embedding in a session.
func (u User) Snapshot() User {
	u.PasswordHash = ""
	return u
}

// FullName joins first and last name, tolerating either being empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserPatch carries a partial profile update. Empty fields leave the current
// value untouched (merge, not replace).
type UserPatch struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	Province  string
}

// ResetToken is the stored side of a single-use password reset credential,
// keyed in its collection by the opaque token string.
type ResetToken struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
