package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrCodeExchange    = errors.New("authorization code exchange failed")
	ErrInvalidIDToken  = errors.New("id token verification failed")
	ErrUserInfo        = errors.New("userinfo request failed")
	ErrMissingIdentity = errors.New("provider returned no subject")

	// ErrProviderRejected marks failures where the provider answered and
	// refused the code or token, as opposed to being unreachable.
	ErrProviderRejected = errors.New("provider rejected the sign-in")

	ErrMailNotSent      = errors.New("mail was not sent")
	ErrEmptyRecipient   = errors.New("mail has no recipient")
	ErrInvalidMailInput = errors.New("mail header contains a line break")
	ErrNoMailHost       = errors.New("mail host is required outside development")
)
