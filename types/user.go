package types

import (
	"strings"
	"time"
)

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's display or full name.
	Name string `json:"name" db:"name"`

	// Email is the user's email address. It is unique across the store
	// and doubles as the login identifier.
	Email string `json:"email" db:"email"`

	// Slug is a URL-safe identifier derived from the email.
	Slug string `json:"slug" db:"slug"`

	// Image is an optional reference (URL) to the user's profile image.
	Image string `json:"image,omitempty" db:"image"`

	// Roles holds the role names granted to the user (e.g. "user",
	// "author", "admin"). Order is irrelevant; they are carried into
	// token claims as-is.
	Roles []string `json:"roles" db:"-"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasRole reports whether the user was granted the named role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// EmailSlug derives the URL-safe slug for an email address by replacing
// every '@' and '.' with '-'.
func EmailSlug(email string) string {
	return strings.NewReplacer("@", "-", ".", "-").Replace(email)
}
