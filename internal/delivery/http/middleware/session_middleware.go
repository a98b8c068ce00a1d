package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"meuapp/config"
	deliverycontext "meuapp/internal/delivery/context"
	"meuapp/internal/delivery/http/flash"
	"meuapp/internal/domain/entity"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/errors"
	"meuapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoginPath is where RequireAuthenticated sends anonymous visitors.
const LoginPath = "/login"

// IdentityHandler is a handler that is given the signed-in credential explicitly.
type IdentityHandler func(c echo.Context, user *entity.Credential) error

// SessionMiddleware moves the session token between the cookie and the session usecase.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	flashes    *flash.Store
	logger     *slog.Logger
	cookieName string
	secure     bool
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions usecase.SessionUsecase, flashes *flash.Store, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	name := "meuapp_session"
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		name = cfg.Session.CookieName
	}

	return &SessionMiddleware{
		sessions:   sessions,
		flashes:    flashes,
		logger:     logger,
		cookieName: name,
		secure:     cfg.HTTP.SecureCookies,
	}
}

// Token returns the session token sent by the client, or "".
func (m *SessionMiddleware) Token(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// SetSession writes the session cookie. Only remembered sessions outlive the browser.
func (m *SessionMiddleware) SetSession(c echo.Context, ticket *usecase.SessionTicket) {
	cookie := m.newCookie(ticket.Token)
	if ticket.Remember {
		cookie.Expires = ticket.ExpiresAt
		cookie.MaxAge = int(time.Until(ticket.ExpiresAt).Seconds())
	}

	c.SetCookie(cookie)
}

// ClearSession tells the client to drop the session cookie.
func (m *SessionMiddleware) ClearSession(c echo.Context) {
	cookie := m.newCookie("")
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1

	c.SetCookie(cookie)
}

// WithIdentity resolves the optional signed-in credential and passes it on; user is nil for anonymous visitors.
func (m *SessionMiddleware) WithIdentity(h IdentityHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolve(c)
		if err != nil {
			return err
		}

		return h(c, user)
	}
}

// RequireAuthenticated guards h. Anonymous visitors are sent to the login page
// with the original path and query in ?next.
func (m *SessionMiddleware) RequireAuthenticated(h IdentityHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolve(c)
		if err != nil {
			return err
		}

		if user == nil {
			if err := m.flashes.Add(c, flash.Info, domainerrors.ErrUnauthenticated.Message()); err != nil {
				m.log(c).Warn("failed to queue login flash", slog.Any("error", err))
			}

			return c.Redirect(http.StatusFound, LoginRedirectURL(c.Request().URL.RequestURI()))
		}

		return h(c, user)
	}
}

// resolve returns nil, nil for anonymous visitors. A stale cookie is cleared on the way.
func (m *SessionMiddleware) resolve(c echo.Context) (*entity.Credential, error) {
	token := m.Token(c)
	if token == "" {
		return nil, nil
	}

	user, err := m.sessions.CurrentUser(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			m.ClearSession(c)

			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (m *SessionMiddleware) newCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *SessionMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// LoginRedirectURL builds the login URL that returns to next after signing in.
func LoginRedirectURL(next string) string {
	if next == "" || next == "/" {
		return LoginPath
	}

	return LoginPath + "?next=" + url.QueryEscape(next)
}
