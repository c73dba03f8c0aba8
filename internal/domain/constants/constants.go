// Package constants defines shared application-level constant values.
package constants

const (
	// EnvDevelop is the environment name used by local development setups.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used by production deployments.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the loopback HTTP publisher for local development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
