package subgen

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embedded embed.FS

// EndpointTemplates returns the built-in endpoint template tree.
func EndpointTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates/endpoint")
}
