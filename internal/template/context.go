package template

import (
	"github.com/modu-ai/ngfs/internal/flags"
)

// TemplateContext provides data for template rendering during project generation.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	AppName       string // camelized, e.g. "myProject"
	DisplayName   string // title-cased, e.g. "My Project"
	ScriptAppName string // Angular module prefix, e.g. "myProjectApp"

	// AngularModules is the formatted module dependency block of the client app.
	AngularModules string

	// Filters holds every vocabulary name, so templates can test any flag
	// under missingkey=error.
	Filters map[string]bool

	// Derived extensions
	ScriptExt   string
	TemplateExt string
	StyleExt    string

	// Models is the default models backend, empty without persistence.
	Models string

	// Meta
	Version  string // generator version
	Platform string // "darwin", "linux", "windows"
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with every filter false and
// the base extensions, then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		Filters:     completeFilters(nil),
		ScriptExt:   flags.BaseScriptExt,
		TemplateExt: flags.BaseTemplateExt,
		StyleExt:    flags.BaseStyleExt,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithApp sets the project names.
func WithApp(appName, displayName, scriptAppName string) ContextOption {
	return func(c *TemplateContext) {
		c.AppName = appName
		c.DisplayName = displayName
		c.ScriptAppName = scriptAppName
	}
}

// WithFilters sets the active filters; names outside the vocabulary are kept.
func WithFilters(m flags.Filters) ContextOption {
	return func(c *TemplateContext) {
		c.Filters = completeFilters(m)
	}
}

// WithSettings sets the derived extensions.
func WithSettings(s flags.Settings) ContextOption {
	return func(c *TemplateContext) {
		if s.ScriptExt != "" {
			c.ScriptExt = s.ScriptExt
		}
		if s.TemplateExt != "" {
			c.TemplateExt = s.TemplateExt
		}
		if s.StyleExt != "" {
			c.StyleExt = s.StyleExt
		}
	}
}

// WithModules sets the formatted Angular module block.
func WithModules(block string) ContextOption {
	return func(c *TemplateContext) {
		c.AngularModules = block
	}
}

// WithModels sets the default models backend.
func WithModels(d flags.DataLayer) ContextOption {
	return func(c *TemplateContext) {
		c.Models = string(d)
	}
}

// WithVersion sets the generator version.
func WithVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = version
	}
}

// WithPlatform sets the target platform.
func WithPlatform(platform string) ContextOption {
	return func(c *TemplateContext) {
		c.Platform = platform
	}
}

func completeFilters(m flags.Filters) map[string]bool {
	out := make(map[string]bool, len(flags.Vocabulary)+len(m))
	for _, name := range flags.Vocabulary {
		out[name] = false
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}
