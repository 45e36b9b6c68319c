package http

import (
	"net/http"
	"strings"
)

var contentSecurityPolicy = []string{
	"default-src 'self'",
	"base-uri 'self'",
	"font-src 'self' https: data:",
	"form-action 'self'",
	"frame-ancestors 'self'",
	"img-src 'self' data: img.shields.io",
	"object-src 'none'",
	"script-src 'self'",
	"script-src-attr 'none'",
	"style-src 'self' https: 'unsafe-inline'",
	"connect-src 'self'",
}

// withSecurityHeaders sets the hardening headers on every response. HTTPS
// upgrades are requested outside development only.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	csp := contentSecurityPolicy
	if !h.dev {
		csp = append(csp[:len(csp):len(csp)], "upgrade-insecure-requests")
	}
	policy := strings.Join(csp, ";")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Content-Security-Policy", policy)
		header.Set("Cross-Origin-Opener-Policy", "same-origin")
		header.Set("Cross-Origin-Resource-Policy", "same-origin")
		header.Set("Origin-Agent-Cluster", "?1")
		header.Set("Referrer-Policy", "no-referrer")
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("X-DNS-Prefetch-Control", "off")
		header.Set("X-Download-Options", "noopen")
		header.Set("X-Frame-Options", "SAMEORIGIN")
		header.Set("X-Permitted-Cross-Domain-Policies", "none")
		header.Set("X-XSS-Protection", "0")
		if !h.dev {
			header.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
