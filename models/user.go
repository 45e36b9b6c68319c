package models

import "time"

// User represents an account that can sign in to the calendar.
// Credential fields are empty for accounts provisioned through a federated
// provider. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the normalized, unique email address of the user.
	Email string `json:"email"`

	// HashedPassword is the hex-encoded PBKDF2 derivation of the password.
	// Empty for federated-only accounts.
	HashedPassword string `json:"-"`

	// Salt is the hex-encoded random salt used for HashedPassword.
	Salt string `json:"-"`

	// Active reports whether the email address has been confirmed.
	// Federated accounts are created active.
	Active bool `json:"active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// HasPassword reports whether the account can sign in with a local password.
func (u User) HasPassword() bool {
	return u.HashedPassword != "" && u.Salt != ""
}

// Principal returns the session identity of the user.
func (u User) Principal() Principal {
	return Principal{ID: u.ID, Email: u.Email}
}

// Principal is the authenticated identity bound to a session.
type Principal struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Credentials carries the input of an authentication attempt. Local sign-in
// and sign-up use Email and Password; federated sign-in uses Code.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"-"`
}

// HashedPassword is the output of the credential hasher.
type HashedPassword struct {
	Hash string
	Salt string
}
