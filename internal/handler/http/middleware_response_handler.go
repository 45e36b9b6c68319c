// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture the status code and the
// number of body bytes for the access log.
//
// WriteHeader is forwarded to the underlying writer exactly once: subsequent
// calls are silently ignored, mirroring the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit WriteHeader via Write)
	// is called.
	status      int
	wroteHeader bool

	// size is the running total of bytes written to the response body.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// bufferedWriter holds the complete response of a handler so the session can
// be committed, and its cookie set, before anything reaches the client.
//
// Headers written by the handler are kept in a copy of the underlying header
// map and only published by flush; a discarded response leaves no trace.
type bufferedWriter struct {
	w http.ResponseWriter

	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{w: w, header: w.Header().Clone()}
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(statusCode int) {
	if b.status != 0 {
		return
	}
	b.status = statusCode
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// flush publishes the buffered headers, status and body to the underlying
// writer.
func (b *bufferedWriter) flush() error {
	dst := b.w.Header()
	for key, values := range b.header {
		if key == "Set-Cookie" {
			continue
		}
		dst[key] = values
	}
	if cookies := b.header.Values("Set-Cookie"); len(cookies) > 0 {
		dst["Set-Cookie"] = append(dst.Values("Set-Cookie"), cookies...)
	}

	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	b.w.WriteHeader(status)

	_, err := b.body.WriteTo(b.w)
	return err
}
