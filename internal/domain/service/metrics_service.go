package service

import "time"

// MetricsRecorder records wallet sync and render metrics.
type MetricsRecorder interface {
	ObserveSync(provider, outcome string)
	ObserveProviderRequest(resource, method string, status int)
	ObserveRender(elapsed time.Duration)
}
