// Package metrics exposes wallet sync metrics to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"stampcard/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stampcard"

// Recorder owns a private registry so tests and multiple binaries do not
// share global collectors.
type Recorder struct {
	registry *prometheus.Registry

	syncs            *prometheus.CounterVec
	providerRequests *prometheus.CounterVec
	renderDuration   prometheus.Histogram
}

// NewRecorder creates and registers the collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		syncs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wallet",
				Name:      "sync_total",
				Help:      "Wallet syncs by provider and outcome.",
			},
			[]string{"provider", "outcome"},
		),
		providerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wallet",
				Name:      "provider_requests_total",
				Help:      "HTTP calls to the wallet provider API.",
			},
			[]string{"resource", "method", "status"},
		),
		renderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "strip",
				Name:      "render_seconds",
				Help:      "Time to rasterize a strip.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
			},
		),
	}

	r.registry.MustRegister(
		r.syncs,
		r.providerRequests,
		r.renderDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return r
}

// NewMetricsRecorder adapts NewRecorder for injection as a MetricsRecorder.
func NewMetricsRecorder(r *Recorder) service.MetricsRecorder {
	return r
}

func (r *Recorder) ObserveSync(provider, outcome string) {
	r.syncs.WithLabelValues(provider, outcome).Inc()
}

// ObserveProviderRequest records one provider call. Status 0 means the
// request never got an HTTP response.
func (r *Recorder) ObserveProviderRequest(resource, method string, status int) {
	r.providerRequests.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
}

func (r *Recorder) ObserveRender(d time.Duration) {
	r.renderDuration.Observe(d.Seconds())
}

// RegisterDBStats exports the pool stats of db under the given name.
func (r *Recorder) RegisterDBStats(db *sql.DB, name string) {
	r.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
