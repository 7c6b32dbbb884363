package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "stampcard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDFromHeaders(t *testing.T) {
	tests := []struct {
		name       string
		requestID  string
		cloudTrace string
		want       string
	}{
		{name: "client id", requestID: "req-42", want: "req-42"},
		{name: "client id wins over trace", requestID: "req-42", cloudTrace: "105445aa7843bc8bf206b12000100000/1;o=1", want: "req-42"},
		{name: "trace id", cloudTrace: "105445aa7843bc8bf206b12000100000/1;o=1", want: "105445aa7843bc8bf206b12000100000"},
		{name: "forged id falls back to trace", requestID: "x\nlevel=ERROR", cloudTrace: "abc/1", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requestIDFromHeaders(tt.requestID, tt.cloudTrace))
		})
	}
}

func TestRequestIDFromHeaders_Generated(t *testing.T) {
	for _, id := range []string{"", strings.Repeat("a", maxRequestIDLength+1), "spaces are bad"} {
		got := requestIDFromHeaders(id, "")
		_, err := uuid.Parse(got)
		assert.NoError(t, err, id)
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	var fromCtx string
	var hasLogger bool
	e.GET("/x", func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusOK)
	}, m.Process)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-7", fromCtx)
	assert.True(t, hasLogger)
}
