// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer. Callers can match
// against them with [errors.Is].
var (
	// ErrNoCSRFToken is returned when an unsafe request carries neither the
	// "_csrf" form field nor the "X-CSRF-Token" header.
	ErrNoCSRFToken = errors.New("No CSRF token provided")

	// ErrInvalidCSRFToken is returned when the submitted token was not minted
	// for the session secret.
	ErrInvalidCSRFToken = errors.New("Invalid csrf token")

	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrPanic wraps a value recovered from a panicking handler.
	ErrPanic = errors.New("panic while serving request")

	// ErrTooManyRequests is the body of 429 answers.
	ErrTooManyRequests = errors.New("Too many requests, please try again later.")
)
