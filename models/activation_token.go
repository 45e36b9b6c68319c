package models

import "time"

// ActivationToken is a single-use secret that confirms ownership of the
// email address of a local account.
type ActivationToken struct {
	ID      int64
	UserID  int64
	Token   string
	Expires time.Time
}

// ExpiredAt reports whether the token is no longer usable at now.
// A token whose expiry equals now is expired.
func (t ActivationToken) ExpiredAt(now time.Time) bool {
	return !now.Before(t.Expires)
}
