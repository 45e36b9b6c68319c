// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business logic of the dailydoit server:
// account sign-up and activation, local and federated sign-in, the
// completed-days calendar and outgoing notifications.
//
// Services receive their collaborators (repositories, hashers, mail and
// identity adapters) through constructors and return sentinel errors from
// errors.go or *validators.ValidationError so that the transport layer can
// map failures with [errors.Is].
package service

import (
	"context"

	"github.com/dailydoit/dailydoit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Strategy names accepted by [AuthService.Authenticate].
const (
	StrategyLocal  = "local"
	StrategyGoogle = "google"
)

// AuthStrategy verifies one kind of credentials and returns the principal
// they identify.
type AuthStrategy interface {
	Name() string
	Authenticate(ctx context.Context, creds models.Credentials) (models.Principal, error)
}

// AuthService orchestrates sign-up, sign-in and account activation.
type AuthService interface {
	// SignUp creates an inactive local account and emails its activation
	// link. Returns *validators.ValidationError for bad input and
	// [ErrSignUpConflict] when the email is taken.
	SignUp(ctx context.Context, creds models.Credentials) (models.Principal, error)

	// Authenticate dispatches creds to the strategy registered under
	// strategy. Returns [ErrUnknownStrategy] for unregistered names.
	Authenticate(ctx context.Context, strategy string, creds models.Credentials) (models.Principal, error)

	// Activate confirms the account owning token. Returns
	// [ErrInvalidActivationToken] or [ErrActivationTokenExpired].
	Activate(ctx context.Context, token string) error
}

// FederatedAuthService runs the redirect part of a federated sign-in.
type FederatedAuthService interface {
	// Enabled reports whether a provider is configured.
	Enabled() bool

	// Begin creates a nonce to be stored in the session and the consent URL
	// carrying a signed state bound to it.
	Begin(ctx context.Context) (models.FederatedRedirect, error)

	// Complete verifies state against the session nonce, then exchanges
	// code and resolves the asserted identity to a principal.
	Complete(ctx context.Context, state, nonce, code string) (models.Principal, error)
}

// FederatedResolver maps a provider identity to a local account, creating
// it on first sign-in.
type FederatedResolver interface {
	Resolve(ctx context.Context, profile models.FederatedProfile) (user models.User, created bool, err error)
}

// Notifier sends emails in the background. Failures are reported, never
// returned, and do not depend on the caller's context staying alive.
type Notifier interface {
	SendActivation(ctx context.Context, email, token string)
	SendAccountExists(ctx context.Context, email string)
	NotifySignup(ctx context.Context)

	// Wait blocks until every pending delivery has finished.
	Wait()
}

// DayService marks and unmarks completed days. Malformed and future dates
// are rejected with *validators.ValidationError; marking an already
// completed day returns store.ErrDayAlreadyExists.
type DayService interface {
	Submit(ctx context.Context, userID int64, date string) error
	Remove(ctx context.Context, userID int64, date string) error
}

// CalendarService builds the calendar of one year for a user.
type CalendarService interface {
	Calendar(ctx context.Context, userID int64, year int) (models.Calendar, error)
}

// HealthService reports build metadata and storage reachability.
type HealthService interface {
	Health(ctx context.Context) models.Health
}

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
