package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/crypto"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
)

// idBytes is the entropy of a session id.
const idBytes = 32

// Manager loads sessions from request cookies and commits them back.
type Manager struct {
	store Store

	secret     string
	cookieName string
	maxAge     time.Duration
	secure     bool

	now   func() time.Time
	newID func() (string, error)

	logger *logger.Logger
}

// NewManager constructs a Manager over st. Cookies are marked Secure when
// secure is set, which is the case in production.
func NewManager(st Store, cfg config.Session, secure bool, logger *logger.Logger) *Manager {
	return &Manager{
		store:      st,
		secret:     cfg.Secret,
		cookieName: cfg.CookieName,
		maxAge:     cfg.MaxAge,
		secure:     secure,
		now:        time.Now,
		newID:      func() (string, error) { return crypto.RandomURLSafe(idBytes) },
		logger:     logger,
	}
}

// NewID returns a fresh random session id, used with [Session.Renew].
func (m *Manager) NewID() (string, error) {
	id, err := m.newID()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingID, err)
	}
	return id, nil
}

// Load returns the session named by the request cookie. A missing, tampered
// or unknown cookie yields a new empty session.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if cookie, err := r.Cookie(m.cookieName); err == nil {
		if id, ok := utils.UnsignValue(cookie.Value, m.secret); ok {
			record, err := m.store.Get(ctx, id)
			switch {
			case err == nil:
				return loadedSession(record), nil
			case errors.Is(err, store.ErrSessionNotFound):
				log.Debug().Msg("session cookie refers to unknown session")
			default:
				log.Err(err).Str("func", "*Manager.Load").Msg("error loading session")
				return nil, fmt.Errorf("%w: %w", ErrLoadingSession, err)
			}
		} else {
			log.Debug().Msg("session cookie signature mismatch")
		}
	}

	id, err := m.NewID()
	if err != nil {
		return nil, err
	}
	return newSession(id), nil
}

// Commit persists s and sets the session cookie on w. It must run before the
// response header is written.
//
// A new unmodified session is not saved and gets no cookie. An existing
// unmodified session is only touched so its expiry rolls forward.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, s *Session) error {
	log := logger.FromContext(ctx)

	id, previousID, data, isNew, modified := s.snapshot()

	if previousID != "" {
		if err := m.store.Destroy(ctx, previousID); err != nil {
			log.Err(err).Str("func", "*Manager.Commit").Msg("error destroying renewed session")
			return fmt.Errorf("%w: %w", ErrSavingSession, err)
		}
	}

	if isNew && !modified {
		return nil
	}

	expires := m.now().Add(m.maxAge)

	var err error
	if modified {
		err = m.store.Set(ctx, models.SessionRecord{ID: id, Data: data, Expires: expires})
	} else {
		err = m.store.Touch(ctx, id, expires)
	}
	if err != nil {
		log.Err(err).Str("func", "*Manager.Commit").Bool("modified", modified).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}

	http.SetCookie(w, m.cookie(id, expires))
	s.markCommitted()
	return nil
}

func (m *Manager) cookie(id string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    utils.SignValue(id, m.secret),
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(m.maxAge / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
