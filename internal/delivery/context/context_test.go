package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gadgetshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID_Fallbacks(t *testing.T) {
	t.Run("echo context", func(t *testing.T) {
		c := newEchoContext()
		SetRequestID(c, "from-echo")
		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("request context", func(t *testing.T) {
		c := newEchoContext()
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("response header", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "from-header")
		assert.Equal(t, "from-header", GetRequestID(c))
	})

	t.Run("nothing set", func(t *testing.T) {
		assert.Empty(t, GetRequestID(newEchoContext()))
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSetActor(t *testing.T) {
	var buf bytes.Buffer
	c := newEchoContext()
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), logger)))

	assert.Nil(t, GetActor(c))

	user := &entity.User{ID: "65a000000000000000000001", Email: "bob@example.com"}
	SetActor(c, user)

	assert.Same(t, user, GetActor(c))
	assert.Equal(t, "bob@example.com", GetActorEmail(c.Request().Context()))

	GetLogger(c.Request().Context()).Info("hello")
	assert.Contains(t, buf.String(), `"user_id":"65a000000000000000000001"`)
}
