package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "stampcard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// headerCloudTrace is set by Cloud Run on Pub/Sub push deliveries.
	headerCloudTrace = "X-Cloud-Trace-Context"

	maxRequestIDLength = 64
)

// RequestIDMiddleware assigns every request an id and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process takes the id from X-Request-Id, then from the Cloud Run trace
// header, and generates one otherwise. The id is echoed back in the
// response and stored for the usecases together with a child logger.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFromHeaders(c.Request().Header.Get(deliverycontext.HeaderXRequestID), c.Request().Header.Get(headerCloudTrace))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func requestIDFromHeaders(requestID, cloudTrace string) string {
	if id := sanitizeRequestID(requestID); id != "" {
		return id
	}

	// TRACE_ID/SPAN_ID;o=TRACE_TRUE
	traceID, _, _ := strings.Cut(cloudTrace, "/")
	if id := sanitizeRequestID(traceID); id != "" {
		return id
	}

	return uuid.New().String()
}

// sanitizeRequestID drops ids a client could use to forge log lines.
func sanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return ""
		}
	}

	return id
}
