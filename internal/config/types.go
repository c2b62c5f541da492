package config

// Generation holds the fixed generation parameters persisted next to the
// feature flags. Sub-generators read them back to know where generated code
// goes and where to register it.
type Generation struct {
	EndpointDirectory string

	InsertRoutes       bool
	RegisterRoutesFile string
	RoutesNeedle       string
	RoutesBase         string
	PluralizeRoutes    bool

	InsertSockets       bool
	RegisterSocketsFile string
	SocketsNeedle       string

	InsertModels       bool
	RegisterModelsFile string
	ModelsNeedle       string
}

// Options are the invocation options of one generator run.
type Options struct {
	Root           string // Project root directory.
	Name           string // Positional app name; empty means the root directory name.
	AppSuffix      string // Suffix appended to the script app name.
	SkipInstall    bool   // Skip dependency installation.
	NonInteractive bool   // Answer questions from defaults and the answers file.
	AnswersFile    string // Optional YAML file with pre-filled answers.
	LogLevel       string // debug, info, warn, error; empty disables logging.
	NoColor        bool   // Disable styled output.
	Force          bool   // Overwrite existing project files.
}
