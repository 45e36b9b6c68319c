package models

import "time"

// SessionData is the persisted payload of a session.
type SessionData struct {
	// Principal is nil for anonymous sessions.
	Principal *Principal `json:"principal,omitempty"`

	// CSRFSecret and CSRFToken are generated once per session id.
	CSRFSecret string `json:"csrf_secret,omitempty"`
	CSRFToken  string `json:"csrf_token,omitempty"`

	// Flash is shown on the next rendered page and then removed.
	Flash *Flash `json:"flash,omitempty"`

	// OAuthNonce binds a pending federated sign-in to this session.
	OAuthNonce string `json:"oauth_nonce,omitempty"`
}

// Flash carries one-shot user messages between a redirect and the page it
// leads to.
type Flash struct {
	// Messages are rendered as a list above the form.
	Messages []string `json:"messages,omitempty"`
	// FieldErrors are rendered next to the named form fields.
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

// SessionRecord is a session as held by a session store.
type SessionRecord struct {
	ID      string
	Data    SessionData
	Expires time.Time
}
