// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements cookie based server-side sessions.
//
// A [Session] lives in the request context. Its payload is persisted through
// a [Store] when the response is committed: new sessions only when they were
// modified, existing sessions on every request so that expiry keeps rolling.
// The cookie carries the session id signed with HMAC-SHA256.
package session

import (
	"context"
	"sync"

	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
)

// Store is a session backend. It is satisfied by the postgres, redis and
// memory session stores.
type Store = store.SessionRepository

// Session is the state of one browser session. It is safe for concurrent
// use.
type Session struct {
	mu sync.Mutex

	id   string
	data models.SessionData

	isNew    bool
	modified bool
	// previousID is destroyed in the store on commit after Renew.
	previousID string
}

func newSession(id string) *Session {
	return &Session{id: id, isNew: true}
}

func loadedSession(record models.SessionRecord) *Session {
	return &Session{id: record.ID, data: record.Data}
}

// ID returns the current session id.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// IsNew reports whether the session was created by this request.
func (s *Session) IsNew() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNew
}

// Principal returns the signed-in user, if any.
func (s *Session) Principal() (models.Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Principal == nil {
		return models.Principal{}, false
	}
	return *s.data.Principal, true
}

// CSRF returns the CSRF secret and token of the session. Both are empty
// until SetCSRF is called.
func (s *Session) CSRF() (secret, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CSRFSecret, s.data.CSRFToken
}

// SetCSRF stores the CSRF pair.
func (s *Session) SetCSRF(secret, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.CSRFSecret = secret
	s.data.CSRFToken = token
	s.modified = true
}

// SetFlash replaces the pending flash.
func (s *Session) SetFlash(flash models.Flash) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Flash = &flash
	s.modified = true
}

// PopFlash returns the pending flash and removes it from the session.
func (s *Session) PopFlash() (models.Flash, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.Flash == nil {
		return models.Flash{}, false
	}

	flash := *s.data.Flash
	s.data.Flash = nil
	s.modified = true
	return flash, true
}

// SetOAuthNonce binds a pending federated sign-in to the session.
func (s *Session) SetOAuthNonce(nonce string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.OAuthNonce = nonce
	s.modified = true
}

// PopOAuthNonce returns the pending nonce and clears it, so a state
// parameter can be redeemed only once.
func (s *Session) PopOAuthNonce() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce := s.data.OAuthNonce
	if nonce != "" {
		s.data.OAuthNonce = ""
		s.modified = true
	}
	return nonce
}

// Renew moves the session to newID and replaces its payload with a fresh
// one bound to principal (nil signs the session out). The previous id is
// destroyed on commit and the CSRF pair is regenerated on the next request.
// The pending flash survives.
func (s *Session) Renew(newID string, principal *models.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isNew && s.previousID == "" {
		s.previousID = s.id
	}

	flash := s.data.Flash
	s.data = models.SessionData{Flash: flash}
	if principal != nil {
		p := *principal
		s.data.Principal = &p
	}

	s.id = newID
	s.isNew = true
	s.modified = true
}

// snapshot returns what commit needs under a single lock.
func (s *Session) snapshot() (id, previousID string, data models.SessionData, isNew, modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.previousID, s.data, s.isNew, s.modified
}

func (s *Session) markCommitted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.previousID = ""
	s.isNew = false
	s.modified = false
}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, utils.SessionCtxKey, s)
}

// FromContext returns the session of the request, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(utils.SessionCtxKey).(*Session)
	return s
}

// PrincipalFromContext returns the signed-in user of the request session.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	s := FromContext(ctx)
	if s == nil {
		return models.Principal{}, false
	}
	return s.Principal()
}
