// Package flash keeps one-shot notifications in a signed cookie between a redirect and the next page.
package flash

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"meuapp/config"
	"meuapp/internal/errors"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// Categories understood by the templates.
const (
	Success = "success"
	Info    = "info"
	Danger  = "danger"
)

// flashMaxAge is how long an unread message survives, in seconds.
const flashMaxAge = 600

const defaultCookieName = "meuapp_flash"

// Message is a single notification.
type Message struct {
	Category string
	Text     string
}

func init() {
	gob.Register(Message{})
}

// Store reads and writes flash messages.
type Store struct {
	store *sessions.CookieStore
	name  string
}

// New builds the store from secretKey.flash. Outside production a missing key is
// replaced by a random one, so pending messages are lost on restart.
func New(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	key := []byte(cfg.SecretKey.Flash)
	if len(key) == 0 {
		if cfg.Env.Env == config.EnvProduction {
			return nil, errors.New("flash secret must be provided")
		}
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("failed to generate flash key")
		}
		logger.Warn("secretKey.flash not set, using a random key")
	}

	name := defaultCookieName
	if cfg.Session != nil && cfg.Session.FlashCookieName != "" {
		name = cfg.Session.FlashCookieName
	}

	store := sessions.NewCookieStore(key)
	store.MaxAge(flashMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.HTTP.SecureCookies
	store.Options.SameSite = http.SameSiteLaxMode

	return &Store{store: store, name: name}, nil
}

// Add queues a message for the next rendered page.
func (s *Store) Add(c echo.Context, category, text string) error {
	session := s.session(c)
	session.AddFlash(Message{Category: category, Text: text})

	return errors.Wrap(session.Save(c.Request(), c.Response()), "save flash cookie")
}

// Pop returns and clears the queued messages. A tampered or stale cookie reads as empty.
func (s *Store) Pop(c echo.Context) []Message {
	session := s.session(c)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	messages := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			messages = append(messages, m)
		}
	}

	_ = session.Save(c.Request(), c.Response())

	return messages
}

// session hands back a fresh session when the cookie cannot be decoded.
func (s *Store) session(c echo.Context) *sessions.Session {
	session, err := s.store.Get(c.Request(), s.name)
	if err != nil || session == nil {
		return sessions.NewSession(s.store, s.name)
	}

	return session
}
