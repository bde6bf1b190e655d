// Package constants holds provider names used to pick infrastructure implementations from config.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Zone lookup providers
const (
	ZoneProviderHTTP   = "http"
	ZoneProviderRedis  = "redis"
	ZoneProviderBlob   = "blob"
	ZoneProviderStatic = "static"
)
