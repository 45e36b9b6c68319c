// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists but does not accept the request method is answered
// like an unknown path: notFound runs, so the visitor gets the regular 404
// page and no 405 leaks the route table. When notFound is nil a bare 404
// is written.
//
// The lookup compares route patterns with the raw request path, so only
// static patterns are matched. A parameterised path such as
// "/calendar/{year}" always falls through to notFound.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router, notFoundPage))
func CheckHTTPMethod(router *chi.Mux, notFound http.Handler) http.HandlerFunc {
	if notFound == nil {
		notFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		notFound.ServeHTTP(w, r)
	}
}
