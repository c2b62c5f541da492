package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Template delimiters. Angular markup uses {{ }}, so templates use <% %>.
const (
	LeftDelim  = "<%"
	RightDelim = "%>"
)

// funcMap returns the functions available in all templates: the sprig text
// functions plus project helpers.
func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	// jsonEscape escapes a string for safe embedding in JSON values.
	fm["jsonEscape"] = func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	}
	return fm
}

// Renderer renders template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrMissingTemplateKey if a key is missing and
	// ErrUnexpandedToken if delimiters remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys  fs.FS
	funcs template.FuncMap
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys, funcs: funcMap()}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Delims(LeftDelim, RightDelim).
		Funcs(r.funcs).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if i := bytes.Index(result, []byte(LeftDelim)); i >= 0 {
		end := min(len(result), i+20)
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, strings.TrimSpace(string(result[i:end])))
	}
	return result, nil
}
