package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("from echo context", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "req-1")
		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("from request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-2"))
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "req-2", GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestWithCard(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))
	cardID := uuid.MustParse("9a7c3e0e-2b7f-4c55-8d0e-3f1f6b9b2a10")

	ctx := WithCard(context.Background(), cardID, fallback)
	assert.Equal(t, cardID, GetCardID(ctx))

	GetLoggerOrDefault(ctx, fallback).Info("synced")
	assert.Contains(t, buf.String(), "card_id="+cardID.String())

	// Scoping twice to the same card does not repeat the attribute.
	again := WithCard(ctx, cardID, fallback)
	assert.Equal(t, ctx, again)

	assert.Equal(t, uuid.Nil, GetCardID(context.Background()))
}
