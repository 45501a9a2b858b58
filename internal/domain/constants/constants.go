// Package constants holds identifiers shared across layers.
package constants

// Mail event transports.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// DefaultAMQPQueue is used when pubsub.amqpQueue is empty.
const DefaultAMQPQueue = "mail.outbound"
