// Package http implements the HTTP transport layer of the application.
//
// It wires the chi router, renders the server-side pages and serves the
// JSON day endpoints. Cross-cutting concerns such as request tracing, access
// logging, panic recovery, security headers, sessions, CSRF protection,
// rate limiting and the authentication guard are handled in this package
// before requests are delegated to the service layer.
package http
