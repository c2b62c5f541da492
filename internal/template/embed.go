package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// Embedded returns the built-in project template tree.
func Embedded() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
