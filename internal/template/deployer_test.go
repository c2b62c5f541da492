package template

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/modu-ai/ngfs/internal/compose"
	"github.com/modu-ai/ngfs/internal/flags"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md.tmpl":                   &fstest.MapFile{Data: []byte("# <% .DisplayName %>\n")},
		".gitignore":                       &fstest.MapFile{Data: []byte("node_modules\n")},
		"client/app/app.js.tmpl":           &fstest.MapFile{Data: []byte("angular.module('<% .ScriptAppName %>', [<% .AngularModules %>]);\n")},
		"client/app/app.css":               &fstest.MapFile{Data: []byte("body {}\n")},
		"client/app/app.scss":              &fstest.MapFile{Data: []byte("body {}\n")},
		"server/auth(auth)/index.js":       &fstest.MapFile{Data: []byte("auth\n")},
		"server/sqldb(sequelize)/index.js": &fstest.MapFile{Data: []byte("sqldb\n")},
	}
}

func testRequest() compose.TemplateRequest {
	return compose.TemplateRequest{
		Markers:    []string{"auth", "babel", "js", "sass"},
		Extensions: []string{"babel", "js", "scss"},
	}
}

func TestGeneratorGenerate(t *testing.T) {
	t.Run("successful_generation", func(t *testing.T) {
		root := t.TempDir()
		g := NewGenerator(testFS())
		data := NewTemplateContext(WithApp("demo", "Demo", "demoApp"), WithModules("\n  'demoApp.constants'\n"))

		res, err := g.Generate(context.Background(), root, testRequest(), data)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}

		want := []string{".gitignore", "README.md", "client/app/app.js", "client/app/app.scss", "server/auth/index.js"}
		if !slices.Equal(res.Written, want) {
			t.Errorf("Written = %v, want %v", res.Written, want)
		}

		got, err := os.ReadFile(filepath.Join(root, "client/app/app.js"))
		if err != nil {
			t.Fatalf("ReadFile error: %v", err)
		}
		if !strings.Contains(string(got), "angular.module('demoApp', [\n  'demoApp.constants'\n]);") {
			t.Errorf("app.js = %q", got)
		}
		if _, err := os.Stat(filepath.Join(root, "server/sqldb")); !os.IsNotExist(err) {
			t.Error("excluded directory was created")
		}
	})

	t.Run("existing_files_skipped", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("mine"), 0o644); err != nil {
			t.Fatal(err)
		}

		res, err := NewGenerator(testFS()).Generate(context.Background(), root, testRequest(), NewTemplateContext())
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if !slices.Equal(res.Skipped, []string{"README.md"}) {
			t.Errorf("Skipped = %v", res.Skipped)
		}
		got, _ := os.ReadFile(filepath.Join(root, "README.md"))
		if string(got) != "mine" {
			t.Errorf("existing file overwritten: %q", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("mine"), 0o644); err != nil {
			t.Fatal(err)
		}

		g := NewGenerator(testFS(), WithOverwrite(true))
		if _, err := g.Generate(context.Background(), root, testRequest(), NewTemplateContext(WithApp("a", "Alpha", "aApp"))); err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		got, _ := os.ReadFile(filepath.Join(root, "README.md"))
		if string(got) != "# Alpha\n" {
			t.Errorf("README.md = %q, want rendered template", got)
		}
	})

	t.Run("nil_context_rejected", func(t *testing.T) {
		_, err := NewGenerator(testFS()).Generate(context.Background(), t.TempDir(), testRequest(), nil)
		if err == nil {
			t.Fatal("expected error rendering without a context")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewGenerator(testFS()).Generate(ctx, t.TempDir(), testRequest(), NewTemplateContext())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Generate error = %v, want context.Canceled", err)
		}
	})

	t.Run("duplicate_destination", func(t *testing.T) {
		fsys := fstest.MapFS{
			"main(ngroute).js": &fstest.MapFile{Data: []byte("a")},
			"main(auth).js":    &fstest.MapFile{Data: []byte("b")},
		}
		req := compose.TemplateRequest{Markers: []string{"ngroute", "auth"}}
		root := t.TempDir()
		if _, err := NewGenerator(fsys).Generate(context.Background(), root, req, NewTemplateContext()); err == nil {
			t.Error("expected error for two sources mapping to one destination")
		}
		if entries, _ := os.ReadDir(root); len(entries) != 0 {
			t.Errorf("files written before the error: %v", entries)
		}
	})
}

func TestValidateDeployPath(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"../escape.js", "/etc/passwd", "a/../../b"} {
		if err := validateDeployPath(root, p); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("validateDeployPath(%q) = %v, want ErrPathTraversal", p, err)
		}
	}
	if err := validateDeployPath(root, "client/app/app.js"); err != nil {
		t.Errorf("validateDeployPath(valid) = %v", err)
	}
}

// TestEmbeddedTree renders the built-in templates for a minimal and a full
// feature set.
func TestEmbeddedTree(t *testing.T) {
	fsys, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded error: %v", err)
	}

	full := flags.Flags{
		Script: flags.ScriptTypeScript, Markup: flags.MarkupJade, Stylesheet: flags.StyleSass,
		Router: flags.RouterUIRouter, Bootstrap: true, UIBootstrap: true,
		DataLayers: []flags.DataLayer{flags.DataMongoose, flags.DataSequelize}, HasModels: true,
		DefaultModels: flags.DataSequelize, Auth: true, OAuth: []flags.AuthStrategy{flags.AuthGoogle},
		SocketIO: true, BuildTool: flags.BuildGulp, Testing: flags.TestMocha, Assertion: flags.AssertShould,
	}
	minimal := flags.Flags{
		Script: flags.ScriptBabel, Markup: flags.MarkupHTML, Stylesheet: flags.StyleCSS,
		Router: flags.RouterNgRoute, BuildTool: flags.BuildGrunt, Testing: flags.TestJasmine,
	}

	tests := []struct {
		name    string
		f       flags.Flags
		want    []string
		notWant []string
	}{
		{
			name: "full",
			f:    full,
			want: []string{"package.json", "gulpfile.babel.js", "mocha.conf.js", "tsconfig.client.json",
				"client/app/app.ts", "client/app/main/main.jade", "client/app/main/main.scss",
				"client/app/main/main.routes.ts", "client/components/socket/socket.service.ts",
				"server/config/socketio.js", "server/sqldb/index.js", "server/auth/google/passport.js"},
			notWant: []string{"Gruntfile.js", ".babelrc", "client/app/main/main.html",
				"client/app/app.js", "server/auth/twitter/passport.js"},
		},
		{
			name: "minimal",
			f:    minimal,
			want: []string{"package.json", "Gruntfile.js", ".babelrc", "client/app/app.js",
				"client/app/app.css", "client/app/main/main.html", "client/app/main/main.routes.js", "server/routes.js"},
			notWant: []string{"gulpfile.babel.js", "mocha.conf.js", "server/auth/index.js",
				"server/config/socketio.js", "client/app/main/main.jade", "client/app/app.scss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := flags.Derive(tt.f)
			plan, err := compose.Build(tt.f, s, compose.Input{ScriptAppName: "demoApp"})
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			data := NewTemplateContext(
				WithApp("demo", "Demo", "demoApp"),
				WithFilters(plan.Template.Filters),
				WithSettings(s),
				WithModules(compose.FormatModules(plan.Modules)),
				WithModels(plan.Endpoint.Models),
				WithVersion("v0.0.0-test"),
			)

			root := t.TempDir()
			res, err := NewGenerator(fsys).Generate(context.Background(), root, plan.Template, data)
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			for _, p := range tt.want {
				if !slices.Contains(res.Written, p) {
					t.Errorf("%s not written", p)
				}
			}
			for _, p := range tt.notWant {
				if slices.Contains(res.Written, p) {
					t.Errorf("%s unexpectedly written", p)
				}
			}

			pkg, err := os.ReadFile(filepath.Join(root, "package.json"))
			if err != nil {
				t.Fatalf("ReadFile error: %v", err)
			}
			if !json.Valid(pkg) {
				t.Errorf("package.json is not valid JSON:\n%s", pkg)
			}
		})
	}
}
