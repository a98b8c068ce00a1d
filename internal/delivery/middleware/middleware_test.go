package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meuapp/config"
	deliverycontext "meuapp/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := NewRequestIDMiddleware(logger)
	e := echo.New()

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.Process(func(c echo.Context) error {
			assert.Equal(t, "client-id", deliverycontext.RequestID(c))
			assert.Equal(t, "client-id", deliverycontext.RequestIDFromContext(c.Request().Context()))

			deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

			return nil
		})(c)
		require.NoError(t, err)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "client-id", entry["request_id"])
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, got, 36)
	})
}

func TestLoggerMiddleware_LevelsByStatus(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog string
	}{
		{name: "ok quiet outside debug", debug: false, status: http.StatusOK, wantLog: ""},
		{name: "ok logged in debug", debug: true, status: http.StatusOK, wantLog: "INFO"},
		{name: "client error", debug: false, status: http.StatusNotFound, wantLog: "WARN"},
		{name: "server error", debug: false, status: http.StatusInternalServerError, wantLog: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

			err := m.Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLog, entry["level"])
			assert.EqualValues(t, tt.status, entry["status"])
		})
	}
}

func TestLoggerMiddleware_HandlesError(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

	err := m.Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "short and stout")
}
