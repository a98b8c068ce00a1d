package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "meuapp/internal/delivery/context"
	"meuapp/internal/delivery/http/flash"
	"meuapp/internal/delivery/http/middleware"
	"meuapp/internal/delivery/http/view"
	"meuapp/internal/domain/entity"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/errors"
	"meuapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	msgRegistered = "sua conta foi criada com sucesso! Você já pode fazer login!"
	msgLoggedIn   = "Login Efetuado"

	registerTitle = "Cadastro"
	loginTitle    = "Login"

	fieldRemember = "lembrar"
	fieldNext     = "next"
)

// AuthHandler holds the registration, login and logout handlers.
type AuthHandler struct {
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	cookies  *middleware.SessionMiddleware
	flashes  *flash.Store
	pages    *view.Pages
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	users usecase.UserUsecase,
	sessions usecase.SessionUsecase,
	cookies *middleware.SessionMiddleware,
	flashes *flash.Store,
	pages *view.Pages,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		cookies:  cookies,
		flashes:  flashes,
		pages:    pages,
		logger:   logger,
	}
}

// RegisterForm renders an empty registration form.
func (h *AuthHandler) RegisterForm(c echo.Context, user *entity.Credential) error {
	return h.renderRegister(c, http.StatusOK, user, "", nil)
}

// Register handles the registration form. Field errors re-render the form; success
// sends the visitor to the landing page without signing them in.
func (h *AuthHandler) Register(c echo.Context, user *entity.Credential) error {
	input := usecase.RegisterInput{
		Email:                strings.TrimSpace(c.FormValue(usecase.FieldEmail)),
		Password:             c.FormValue(usecase.FieldPassword),
		PasswordConfirmation: c.FormValue(usecase.FieldPasswordConfirmation),
	}

	output, err := h.users.Register(c.Request().Context(), input)
	if err != nil {
		if fields, ok := formErrors(err); ok {
			return h.renderRegister(c, http.StatusUnprocessableEntity, user, input.Email, fields)
		}

		return errors.WithStack(err)
	}

	h.log(c).Info("credential registered", slog.Uint64("credential_id", uint64(output.Credential.ID)))
	h.flash(c, flash.Success, msgRegistered)

	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginForm renders the login form, keeping ?next for the post.
func (h *AuthHandler) LoginForm(c echo.Context, user *entity.Credential) error {
	return h.renderLogin(c, http.StatusOK, user, loginForm{next: c.QueryParam(fieldNext)}, nil)
}

// Login handles the login form. A bad email or password re-renders the form with
// one generic message. On success any session the browser already held is revoked.
func (h *AuthHandler) Login(c echo.Context, user *entity.Credential) error {
	input := usecase.LoginInput{
		Email:    strings.TrimSpace(c.FormValue(usecase.FieldEmail)),
		Password: c.FormValue(usecase.FieldPassword),
		Remember: isChecked(c.FormValue(fieldRemember)),
		Next:     c.FormValue(fieldNext),
	}
	form := loginForm{email: input.Email, remember: input.Remember, next: input.Next}

	output, err := h.users.Login(c.Request().Context(), input)
	if err != nil {
		if fields, ok := formErrors(err); ok {
			return h.renderLogin(c, http.StatusUnprocessableEntity, user, form, fields)
		}

		if errors.Is(err, domainerrors.ErrAuthenticationFailed) {
			return h.renderLogin(c, http.StatusUnauthorized, user, form, nil, flash.Message{
				Category: flash.Danger,
				Text:     domainerrors.ErrAuthenticationFailed.Message(),
			})
		}

		return errors.WithStack(err)
	}

	// The browser keeps one session; the one it presented is revoked.
	if previous := h.cookies.Token(c); previous != "" {
		if err := h.sessions.Terminate(c.Request().Context(), previous); err != nil {
			h.log(c).Warn("failed to revoke previous session", slog.Any("error", err))
		}
	}

	h.cookies.SetSession(c, output.Session)
	h.flash(c, flash.Success, msgLoggedIn)

	return c.Redirect(http.StatusSeeOther, output.RedirectTo)
}

// Logout revokes the current session and clears the cookie. Anonymous visitors are just redirected.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.cookies.Token(c); token != "" {
		if err := h.sessions.Terminate(c.Request().Context(), token); err != nil {
			h.log(c).Warn("failed to revoke session", slog.Any("error", err))
		}
	}

	h.cookies.ClearSession(c)

	return c.Redirect(http.StatusFound, "/")
}

type loginForm struct {
	email    string
	remember bool
	next     string
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, user *entity.Credential, email string, fields map[string][]string) error {
	return h.pages.Render(c, status, view.PageRegister, user, map[string]any{
		"titulo": registerTitle,
		"email":  email,
		"erros":  fields,
	})
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, user *entity.Credential, form loginForm, fields map[string][]string, extra ...flash.Message) error {
	return h.pages.Render(c, status, view.PageLogin, user, map[string]any{
		"titulo":  loginTitle,
		"email":   form.email,
		"lembrar": form.remember,
		"next":    form.next,
		"erros":   fields,
	}, extra...)
}

func (h *AuthHandler) flash(c echo.Context, category, text string) {
	if err := h.flashes.Add(c, category, text); err != nil {
		h.log(c).Warn("failed to queue flash message", slog.Any("error", err))
	}
}

func (h *AuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// formErrors turns workflow errors that belong next to a form field into per-field messages.
func formErrors(err error) (map[string][]string, bool) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.ByField(), true
	}

	if errors.Is(err, domainerrors.ErrDuplicateEmail) {
		return map[string][]string{usecase.FieldEmail: {domainerrors.ErrDuplicateEmail.Message()}}, true
	}

	if errors.Is(err, domainerrors.ErrPasswordMismatch) {
		return map[string][]string{usecase.FieldPasswordConfirmation: {domainerrors.ErrPasswordMismatch.Message()}}, true
	}

	return nil, false
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "on", "true", "1", "y", "yes":
		return true
	default:
		return false
	}
}
