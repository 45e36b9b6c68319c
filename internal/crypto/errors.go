package crypto

import "errors"

var (
	ErrReadingRandom   = errors.New("error reading random bytes")
	ErrDecodingHash    = errors.New("stored password hash is not valid hex")
	ErrDecodingSalt    = errors.New("stored password salt is not valid hex")
	ErrEmptyCSRFSecret = errors.New("empty csrf secret")
)
