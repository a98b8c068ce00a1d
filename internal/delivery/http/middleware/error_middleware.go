package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "meuapp/internal/delivery/context"
	"meuapp/internal/delivery/http/response"
	"meuapp/internal/delivery/http/view"
	domainerrors "meuapp/internal/domain/errors"
	"meuapp/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	pages  *view.Pages
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, pages *view.Pages) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		pages:  pages,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Browsers get the
// error page, clients asking for JSON get the unified response body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if errors.Is(err, domainerrors.ErrUnauthenticated) {
		_ = c.Redirect(http.StatusFound, LoginRedirectURL(c.Request().URL.RequestURI()))

		return
	}

	status, code, message := m.classify(err, c)

	switch {
	case c.Request().Method == http.MethodHead:
		err = c.NoContent(status)
	case wantsJSON(c):
		err = response.Error(c, status, code, message)
	default:
		err = m.pages.Render(c, status, view.PageError, nil, map[string]any{
			"titulo":   message,
			"status":   status,
			"mensagem": message,
		})
	}

	if err != nil {
		m.log(c).Error("failed to write error response", slog.Any("error", err))
	}
}

// classify maps err to a status, an error code and a user-facing message.
// Details never reach the client; server errors are logged instead.
func (m *ErrorMiddleware) classify(err error, c echo.Context) (int, string, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			return http.StatusNotFound, domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		message, ok := httpErr.Message.(string)
		if !ok || message == "" {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, "HTTP_ERROR", message
	}

	m.logUnhandled(c, err)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
