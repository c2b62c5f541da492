// Package compose turns a resolved flag set into the requests handed to the
// generation collaborators: the template walk, the endpoint sub-generator,
// the component sub-generator and the client module manifest.
package compose

import (
	"strings"

	"github.com/modu-ai/ngfs/internal/defs"
	"github.com/modu-ai/ngfs/internal/flags"
)

// Default endpoint scaffolded with every new project.
const (
	DefaultEndpointName  = "thing"
	DefaultEndpointRoute = "/api/things"
)

// componentFilterOrder lists the flags forwarded to the component
// sub-generator, in the order they are passed.
var componentFilterOrder = []string{"ngroute", "uirouter", "jasmine", "mocha", "expect", "should"}

// es6Filter is always forwarded so components use ES6 syntax.
const es6Filter = "es6"

// extensionOrder maps filter names to extension tokens, in output order.
var extensionOrder = []struct{ filter, ext string }{
	{"babel", "babel"},
	{"ts", "ts"},
	{"js", "js"},
	{"html", "html"},
	{"jade", "jade"},
	{"css", "css"},
	{"stylus", "styl"},
	{"sass", "scss"},
	{"less", "less"},
}

// Input carries the run-level values the planner needs besides the flags.
type Input struct {
	ScriptAppName string // Angular module prefix, e.g. "myProjectApp"
	ForceConfig   bool   // true when a stored configuration was declined
}

// TemplateRequest drives the template tree walk.
type TemplateRequest struct {
	Extensions     []string       // enabled extension tokens
	Markers        []string       // active filter names, sorted
	RewriteScripts bool           // rename client .js files to .ts
	Settings       flags.Settings // derived extensions
	Filters        flags.Filters  // full filter map exposed to templates
}

// EndpointRequest drives the endpoint sub-generator.
type EndpointRequest struct {
	Name   string
	Route  string
	Models flags.DataLayer // empty means no persistence
}

// ComponentRequest drives the component sub-generator.
type ComponentRequest struct {
	RouteDirectory     string
	DirectiveDirectory string
	FilterDirectory    string
	ServiceDirectory   string
	Filters            []string
	Extensions         []string
	BasePath           string
	ForceConfig        bool
}

// Plan is the full set of composition decisions for one run.
type Plan struct {
	Template  TemplateRequest
	Endpoint  EndpointRequest
	Component ComponentRequest
	Modules   []string
}

// Build computes the composition plan. It fails with a
// *flags.InconsistencyError when models are wanted but no backend can be
// resolved from the enabled data layers.
func Build(f flags.Flags, s flags.Settings, in Input) (*Plan, error) {
	models, err := f.ModelsBackend()
	if err != nil {
		return nil, err
	}

	filters := flags.Encode(f)
	exts := withDerived(Extensions(filters), s)

	return &Plan{
		Template: TemplateRequest{
			Extensions:     exts,
			Markers:        filters.Active(),
			RewriteScripts: f.Script == flags.ScriptTypeScript,
			Settings:       s,
			Filters:        filters,
		},
		Endpoint: EndpointRequest{
			Name:   DefaultEndpointName,
			Route:  DefaultEndpointRoute,
			Models: models,
		},
		Component: ComponentRequest{
			RouteDirectory:     defs.AppDir,
			DirectiveDirectory: defs.AppDir,
			FilterDirectory:    defs.AppDir,
			ServiceDirectory:   defs.AppDir,
			Filters:            componentFilters(filters),
			Extensions:         exts,
			BasePath:           defs.ClientDir,
			ForceConfig:        in.ForceConfig,
		},
		Modules: Modules(f, in.ScriptAppName),
	}, nil
}

// Extensions returns the enabled extension tokens in their fixed order.
func Extensions(m flags.Filters) []string {
	var out []string
	for _, e := range extensionOrder {
		if m[e.filter] {
			out = append(out, e.ext)
		}
	}
	return out
}

// withDerived adds the derived script, template and style extensions to exts,
// keeping the fixed order. A reused document may name no member of a family;
// its base extension must still be generated.
func withDerived(exts []string, s flags.Settings) []string {
	want := make(map[string]bool, len(exts)+3)
	for _, e := range exts {
		want[e] = true
	}
	for _, e := range []string{s.ScriptExt, s.TemplateExt, s.StyleExt} {
		if e != "" {
			want[e] = true
		}
	}

	out := make([]string, 0, len(want))
	for _, e := range extensionOrder {
		if want[e.ext] {
			out = append(out, e.ext)
			delete(want, e.ext)
		}
	}
	return out
}

func componentFilters(m flags.Filters) []string {
	var out []string
	for _, name := range componentFilterOrder {
		if m[name] {
			out = append(out, name)
		}
	}
	return append(out, es6Filter)
}

// Modules returns the Angular module dependencies of the client app.
//
// With auth the admin and auth modules lead and validation.match closes the
// list. The four base modules always follow, then the optional router,
// socket and UI modules.
func Modules(f flags.Flags, app string) []string {
	var mods []string
	if f.Auth {
		mods = append(mods, app+".admin", app+".auth")
	}
	mods = append(mods, app+".constants", "ngCookies", "ngResource", "ngSanitize")
	if f.Router == flags.RouterNgRoute {
		mods = append(mods, "ngRoute")
	}
	if f.SocketIO {
		mods = append(mods, "btford.socket-io")
	}
	if f.Router == flags.RouterUIRouter {
		mods = append(mods, "ui.router")
	}
	if f.UIBootstrap {
		mods = append(mods, "ui.bootstrap")
	}
	if f.Auth {
		mods = append(mods, "validation.match")
	}
	return mods
}

// FormatModules renders the module list as the quoted, comma-separated block
// inserted into the client app declaration.
func FormatModules(mods []string) string {
	quoted := make([]string, len(mods))
	for i, m := range mods {
		quoted[i] = "'" + m + "'"
	}
	return "\n  " + strings.Join(quoted, ",\n  ") + "\n"
}
