// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no
	// listen address or no HTTP handler to serve on it.
	errNoServersAreCreated = errors.New("no servers are created: http address or handler is missing")

	// errShutdownTimedOut is returned when in-flight requests outlive the
	// configured shutdown timeout.
	errShutdownTimedOut = errors.New("graceful shutdown timed out")
)
