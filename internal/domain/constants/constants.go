// Package constants holds values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Wallet providers, used as metric and log labels.
const (
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// Sync outcomes, used as metric labels.
const (
	OutcomeLinked   = "linked"
	OutcomeUpdated  = "updated"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
	OutcomePackaged = "packaged"
)
