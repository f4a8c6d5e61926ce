package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultCookieName = "integra.sid"
	DefaultTTL        = 24 * time.Hour
)

// Config controls the session cookie.
type Config struct {
	CookieName string
	// Secret signs the cookie token (HS256).
	Secret string
	TTL    time.Duration
	Secure bool
}

// Manager ties a Store to the session cookie. The cookie carries a signed
// token whose jti is the session id; the state itself stays server-side.
type Manager struct {
	store Store
	cfg   Config
	log   zerolog.Logger
	now   func() time.Time
}

func NewManager(store Store, cfg Config, log zerolog.Logger) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Manager{store: store, cfg: cfg, log: log, now: time.Now}
}

// Load returns the session referenced by the request cookie, or a fresh
// unsaved session when the cookie is missing, forged, expired or unknown.
func (m *Manager) Load(r *http.Request) *Session {
	if c, err := r.Cookie(m.cfg.CookieName); err == nil {
		id, err := m.parseToken(c.Value)
		if err != nil {
			m.log.Debug().Err(err).Msg("session: rejecting cookie")
		} else {
			sess, err := m.store.Get(r.Context(), id)
			if err != nil {
				m.log.Warn().Err(err).Str("session_id", id).Msg("session: store lookup failed")
			} else if sess != nil {
				sess.isNew, sess.dirty = false, false
				return sess
			}
		}
	}
	return m.newSession()
}

// Commit persists pending changes and emits the matching Set-Cookie
// header. It must run before the response headers are written.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.previousID != "" {
		if err := m.store.Delete(ctx, s.previousID); err != nil {
			return fmt.Errorf("session delete: %w", err)
		}
		s.previousID = ""
	}

	if s.destroyed {
		http.SetCookie(w, m.cookie("", -1))
		if s.ID == "" {
			return nil
		}
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("session delete: %w", err)
		}
		return nil
	}
	if !s.dirty {
		return nil
	}

	issue := s.isNew
	if issue {
		s.CreatedAt = m.now()
	}
	s.ExpiresAt = m.now().Add(m.cfg.TTL)
	s.isNew, s.dirty = false, false
	if err := m.store.Save(ctx, s); err != nil {
		s.isNew, s.dirty = issue, true
		return fmt.Errorf("session save: %w", err)
	}

	if issue {
		token, err := m.signToken(s)
		if err != nil {
			return err
		}
		http.SetCookie(w, m.cookie(token, 0))
	}
	return nil
}

func (m *Manager) newSession() *Session {
	now := m.now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.TTL),
		isNew:     true,
	}
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) signToken(s *Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(s.CreatedAt.Add(m.cfg.TTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("session sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) parseToken(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", err
	}
	if !tkn.Valid || claims.ID == "" {
		return "", errors.New("session token without id")
	}
	return claims.ID, nil
}
