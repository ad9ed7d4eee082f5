package constants

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Report sources, used as event and metric labels.
const (
	SourceAPI   = "api"
	SourceBatch = "batch"
	SourceCLI   = "cli"
)

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
