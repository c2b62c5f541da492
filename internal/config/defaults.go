package config

// Default value constants to avoid magic numbers and strings.
const (
	DefaultAppSuffix = "App"

	DefaultEndpointDirectory   = "server/api/"
	DefaultRegisterRoutesFile  = "server/routes.js"
	DefaultRoutesNeedle        = "// Insert routes below"
	DefaultRoutesBase          = "/api/"
	DefaultRegisterSocketsFile = "server/config/socketio.js"
	DefaultSocketsNeedle       = "// Insert sockets below"
	DefaultRegisterModelsFile  = "server/sqldb/index.js"
	DefaultModelsNeedle        = "// Insert models below"
)

// NewDefaultGeneration returns the generation parameters written on every
// fresh configuration.
func NewDefaultGeneration() Generation {
	return Generation{
		EndpointDirectory: DefaultEndpointDirectory,

		InsertRoutes:       true,
		RegisterRoutesFile: DefaultRegisterRoutesFile,
		RoutesNeedle:       DefaultRoutesNeedle,
		RoutesBase:         DefaultRoutesBase,
		PluralizeRoutes:    true,

		InsertSockets:       true,
		RegisterSocketsFile: DefaultRegisterSocketsFile,
		SocketsNeedle:       DefaultSocketsNeedle,

		InsertModels:       true,
		RegisterModelsFile: DefaultRegisterModelsFile,
		ModelsNeedle:       DefaultModelsNeedle,
	}
}

// NewDefaultOptions returns the invocation defaults.
func NewDefaultOptions() Options {
	return Options{
		AppSuffix: DefaultAppSuffix,
	}
}
