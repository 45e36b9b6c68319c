package service

import "errors"

// Authentication failures. Handlers show generic messages for all of them.
var (
	ErrInvalidCredentials         = errors.New("incorrect email or password")
	ErrInvalidActivationToken     = errors.New("invalid activation token")
	ErrActivationTokenExpired     = errors.New("this activation token has expired")
	ErrFederatedProfileIncomplete = errors.New("federated profile is incomplete")
	ErrInvalidOAuthState          = errors.New("invalid oauth state")
)

var (
	// ErrSignUpConflict is returned when the email already belongs to an
	// account. It wraps store.ErrEmailAlreadyExists.
	ErrSignUpConflict = errors.New("account already exists")

	ErrUnknownStrategy       = errors.New("unknown authentication strategy")
	ErrFederatedNotEnabled   = errors.New("federated sign in is not configured")
	ErrStateCreationFailed   = errors.New("failed to create oauth state")
	ErrTokenCreationFailed   = errors.New("failed to create activation token")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidYear           = errors.New("invalid calendar year")
)
