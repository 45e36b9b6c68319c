// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the dailydoit server.
//
// [MailSender] delivers transactional email over SMTP ([NewSMTPMailSender])
// or, when no relay is configured, writes it to the log ([NewLogMailSender]).
// [OAuthProvider] drives the Google authorization code flow
// ([NewGoogleProvider]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic error
// handling.
package adapter

import (
	"context"

	"github.com/dailydoit/dailydoit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MailSender delivers a single email. Implementations must honor ctx
// cancellation and never retry on their own.
type MailSender interface {
	// Send delivers an HTML email.
	Send(ctx context.Context, mail models.Mail) error

	// SendPlain delivers a plain-text email.
	SendPlain(ctx context.Context, mail models.PlainMail) error
}

// OAuthProvider is a federated identity provider using the authorization
// code flow.
type OAuthProvider interface {
	// Name returns the provider identifier stored with federated credentials.
	Name() string

	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the identity it asserts.
	// Returns [ErrMissingIdentity] when the provider reports no subject.
	Exchange(ctx context.Context, code string) (models.FederatedProfile, error)
}
