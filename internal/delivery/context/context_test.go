package context

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequestScope(context.Background(), base, "req-9")
	assert.Equal(t, "req-9", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))

	ctx = WithLogAttrs(ctx, slog.String("user_id", "u-1"))
	GetLoggerOrDefault(ctx, base).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "u-1", entry["user_id"])
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Equal(t, ctx, WithLogAttrs(ctx, slog.String("k", "v")))
}
