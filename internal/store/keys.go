package store

const (
	// NamespaceSource scopes the raw dashboard document (config.yml).
	NamespaceSource = "mafl:source:"
	// NamespaceRuntime scopes the persisted active configuration and its
	// derived index.
	NamespaceRuntime = "mafl:runtime:"

	// KeyConfig holds the last saved configuration.
	KeyConfig = "config"
	// KeyServices holds the derived service-by-id index.
	KeyServices = "services"
)
