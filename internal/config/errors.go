package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown deployment or an empty base URL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSessionConfigs indicates a missing or weak session secret
	// or an unknown session store.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or a redis store without an address).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates a half-configured Google OAuth client.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidMailConfigs indicates a production deployment without an
	// SMTP relay or sender address.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)

// ErrParsingEnv wraps every environment variable that could not be
// converted to its field type.
var ErrParsingEnv = errors.New("error getting env configs")
