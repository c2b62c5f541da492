package compose

import (
	"errors"
	"slices"
	"testing"

	"github.com/modu-ai/ngfs/internal/flags"
)

func TestModulesOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    flags.Flags
		want []string
	}{
		{
			name: "auth_ngroute",
			f:    flags.Flags{Auth: true, Router: flags.RouterNgRoute},
			want: []string{"myApp.admin", "myApp.auth", "myApp.constants", "ngCookies", "ngResource", "ngSanitize", "ngRoute", "validation.match"},
		},
		{
			name: "base_only",
			f:    flags.Flags{},
			want: []string{"myApp.constants", "ngCookies", "ngResource", "ngSanitize"},
		},
		{
			name: "uirouter_socket_bootstrap",
			f:    flags.Flags{Router: flags.RouterUIRouter, SocketIO: true, UIBootstrap: true},
			want: []string{"myApp.constants", "ngCookies", "ngResource", "ngSanitize", "btford.socket-io", "ui.router", "ui.bootstrap"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Modules(tt.f, "myApp"); !slices.Equal(got, tt.want) {
				t.Errorf("Modules() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatModules(t *testing.T) {
	t.Parallel()

	got := FormatModules([]string{"a.constants", "ngCookies"})
	want := "\n  'a.constants',\n  'ngCookies'\n"
	if got != want {
		t.Errorf("FormatModules() = %q, want %q", got, want)
	}
}

func TestBuildClientScenario(t *testing.T) {
	t.Parallel()

	f := flags.Flags{
		Script:     flags.ScriptTypeScript,
		Markup:     flags.MarkupHTML,
		Stylesheet: flags.StyleSass,
		Router:     flags.RouterUIRouter,
		Testing:    flags.TestJasmine,
	}
	s := flags.Derive(f)
	if s.ScriptExt != "ts" || s.TemplateExt != "html" || s.StyleExt != "scss" {
		t.Fatalf("Derive() = %+v", s)
	}

	p, err := Build(f, s, Input{ScriptAppName: "demoApp"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if want := []string{"ts", "js", "html", "scss"}; !slices.Equal(p.Template.Extensions, want) {
		t.Errorf("Extensions = %v, want %v", p.Template.Extensions, want)
	}
	if !p.Template.RewriteScripts {
		t.Error("RewriteScripts = false for TypeScript")
	}
	if !slices.Contains(p.Template.Markers, "uirouter") {
		t.Errorf("Markers = %v, missing uirouter", p.Template.Markers)
	}
	if !slices.IsSorted(p.Template.Markers) {
		t.Errorf("Markers not sorted: %v", p.Template.Markers)
	}
	if want := []string{"uirouter", "jasmine", "es6"}; !slices.Equal(p.Component.Filters, want) {
		t.Errorf("component filters = %v, want %v", p.Component.Filters, want)
	}
	if p.Component.BasePath != "client" || p.Component.RouteDirectory != "client/app/" {
		t.Errorf("component paths = %+v", p.Component)
	}
}

func TestBuildServerScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          flags.Flags
		wantModels flags.DataLayer
	}{
		{
			name: "two_layers_sequelize_default",
			f: flags.Flags{
				DataLayers:    []flags.DataLayer{flags.DataMongoose, flags.DataSequelize},
				HasModels:     true,
				DefaultModels: flags.DataSequelize,
				Auth:          true,
				OAuth:         []flags.AuthStrategy{flags.AuthGoogle},
			},
			wantModels: flags.DataSequelize,
		},
		{
			name:       "single_layer",
			f:          flags.Flags{DataLayers: []flags.DataLayer{flags.DataMongoose}, HasModels: true},
			wantModels: flags.DataMongoose,
		},
		{
			name:       "no_layers",
			f:          flags.Flags{},
			wantModels: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := Build(tt.f, flags.Derive(tt.f), Input{ScriptAppName: "x"})
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if p.Endpoint.Models != tt.wantModels {
				t.Errorf("Endpoint.Models = %q, want %q", p.Endpoint.Models, tt.wantModels)
			}
			if p.Endpoint.Route != DefaultEndpointRoute || p.Endpoint.Name != DefaultEndpointName {
				t.Errorf("Endpoint = %+v", p.Endpoint)
			}
		})
	}
}

func TestBuildInconsistentModels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    flags.Flags
	}{
		{"models_without_layer", flags.Flags{HasModels: true}},
		{"default_not_selected", flags.Flags{
			DataLayers:    []flags.DataLayer{flags.DataMongoose},
			HasModels:     true,
			DefaultModels: flags.DataSequelize,
		}},
		{"several_without_default", flags.Flags{
			DataLayers: []flags.DataLayer{flags.DataMongoose, flags.DataSequelize},
			HasModels:  true,
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(tt.f, flags.Derive(tt.f), Input{})
			if !errors.Is(err, flags.ErrInconsistent) {
				t.Errorf("Build() error = %v, want ErrInconsistent", err)
			}
		})
	}
}

func TestBuildForceConfig(t *testing.T) {
	t.Parallel()

	p, err := Build(flags.Flags{}, flags.Settings{}, Input{ForceConfig: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !p.Component.ForceConfig {
		t.Error("ForceConfig not forwarded to component request")
	}
	if want := []string{"es6"}; !slices.Equal(p.Component.Filters, want) {
		t.Errorf("component filters = %v, want %v", p.Component.Filters, want)
	}
}

// A reused document without a markup member still derives html, and the
// plan must keep the html views.
func TestBuildReusedDocumentWithoutMarkup(t *testing.T) {
	t.Parallel()

	f, err := flags.Decode(flags.Filters{
		"js": true, "babel": true, "css": true, "uirouter": true, "grunt": true, "jasmine": true,
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	s := flags.Derive(f)
	if s.TemplateExt != "html" {
		t.Fatalf("TemplateExt = %q, want html", s.TemplateExt)
	}

	p, err := Build(f, s, Input{ScriptAppName: "demoApp"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := []string{"babel", "js", "html", "css"}
	if !slices.Equal(p.Template.Extensions, want) {
		t.Errorf("template extensions = %v, want %v", p.Template.Extensions, want)
	}
	if !slices.Equal(p.Component.Extensions, want) {
		t.Errorf("component extensions = %v, want %v", p.Component.Extensions, want)
	}
}
