package http

import (
	"net/http"

	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var compressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"application/xml",
}

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecoverer)
	router.Use(middleware.Compress(5, compressibleTypes...))
	router.Use(h.withSecurityHeaders)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
		r.Get("/robots.txt", h.robots)
		r.Get("/sitemap.xml", h.sitemap)
		r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(publicFiles())))
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Use(h.provideCSRF)
		r.Use(h.validateCSRF)

		r.Get("/", h.home)
		r.Get("/privacy-policy", h.privacyPolicy)

		r.Get("/signin", h.signInPage)
		r.With(h.signInLimiter.middleware).Post("/signin", h.signIn)
		r.Get("/signin/federated/google", h.googleSignIn)
		r.Get(adapter.GoogleCallbackPath, h.googleCallback)
		r.Get("/signup", h.signUpPage)
		r.With(h.signUpLimiter.middleware).Post("/signup", h.signUp)
		r.Get("/activate/{token}", h.activate)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Post("/signout", h.signOut)
			r.Get("/calendar", h.currentCalendar)
			r.Get("/calendar/{year}", h.calendar)
			r.Post("/day", h.submitDay)
			r.Delete("/day", h.removeDay)
		})
	})

	notFoundPage := h.withSession(http.HandlerFunc(h.notFound))
	router.NotFound(notFoundPage.ServeHTTP)
	router.MethodNotAllowed(CheckHTTPMethod(router, notFoundPage))

	return router
}
