package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MetricsHandler exposes a Prometheus scrape endpoint.
type MetricsHandler struct {
	handler echo.HandlerFunc
}

// NewMetricsHandler wraps an http.Handler that serves the metrics registry.
func NewMetricsHandler(h http.Handler) *MetricsHandler {
	return &MetricsHandler{handler: echo.WrapHandler(h)}
}

// Scrape serves the current metric values.
func (h *MetricsHandler) Scrape(c echo.Context) error {
	return h.handler(c)
}
