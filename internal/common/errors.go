// Package common defines shared constants and sentinel errors used across
// EaseShop components. Callers should use errors.Is to match these values.
//
// Every sentinel here describes a recoverable, user-facing business
// condition; the error text doubles as the canonical message shown to the
// user. None of them indicates a programming fault.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// User directory errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("not logged in")

	// Password reset errors.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// Order ledger errors.
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")

	// Review errors.
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound = errors.New("review not found")

	// Catalog errors.
	ErrProductNotFound = errors.New("product not found")
)
