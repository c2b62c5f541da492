package defs

// Common file names used across the project.
const (
	// ConfigFile is the persisted generator configuration document.
	ConfigFile = ".ngfs-rc.yaml"

	// PackageJSON is the npm manifest of a generated project.
	PackageJSON = "package.json"

	// AppDir is the client application directory of a generated project.
	AppDir = "client/app/"

	// ClientDir is the client base path handed to the component generator.
	ClientDir = "client"
)

// File permissions used when writing generated output.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
