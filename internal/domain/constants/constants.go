// Package constants holds shared domain constants.
package constants

// Pub/Sub provider selectors used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store collection names. Documents are keyed by client-chosen UUID strings
// or store-assigned ids for documents created outside this system.
const (
	CollectionUsers          = "users"
	CollectionDeviceRequests = "deviceRequests"
	CollectionCategories     = "categories"
	CollectionBouquets       = "bouquets"
	CollectionChannels       = "channels"
	CollectionPackages       = "packages"
)
