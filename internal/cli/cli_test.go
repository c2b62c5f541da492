package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/ngfs/internal/defs"
)

// execute runs the command tree with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestInitNonInteractive(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "init", "shop", "--root", root, "--non-interactive", "--skip-install", "--no-color")
	if err != nil {
		t.Fatalf("init error: %v\n%s", err, out)
	}

	for _, rel := range []string{"package.json", defs.ConfigFile, "server/routes.js"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not generated: %v", rel, err)
		}
	}
	for _, want := range []string{"Project generated", "shopApp", "npm install"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInitWithAnswersFile(t *testing.T) {
	root := t.TempDir()
	answers := filepath.Join(t.TempDir(), "answers.yaml")
	doc := "transpiler: ts\nodms: [sequelize]\nauth: false\nbuildtool: grunt\n"
	if err := os.WriteFile(answers, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "init", "--root", root, "--non-interactive", "--skip-install", "--no-color", "--answers", answers)
	if err != nil {
		t.Fatalf("init error: %v\n%s", err, out)
	}
	for _, rel := range []string{"client/app/app.ts", "Gruntfile.js", "server/sqldb/index.js"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not generated: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "server", "auth")); !os.IsNotExist(err) {
		t.Error("auth scaffolding generated although auth was declined")
	}
}

func TestInitRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "init", "--root", t.TempDir(), "--non-interactive", "--app-suffix", "bad-suffix")
	if err == nil {
		t.Fatal("expected error for invalid app suffix")
	}
}

func TestInitMissingAnswersFile(t *testing.T) {
	_, err := execute(t, "init", "--root", t.TempDir(), "--non-interactive", "--skip-install",
		"--answers", filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing answers file")
	}
}

func TestConfigCommand(t *testing.T) {
	root := t.TempDir()
	if out, err := execute(t, "init", "--root", root, "--non-interactive", "--skip-install", "--no-color"); err != nil {
		t.Fatalf("init error: %v\n%s", err, out)
	}

	// Lookup walks up from a nested directory.
	out, err := execute(t, "config", "--root", filepath.Join(root, "server"), "--no-color")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	for _, want := range []string{"filters", "generatorVersion", "routesNeedle", "ngComponent", "mongoose"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigOutsideProject(t *testing.T) {
	if _, err := execute(t, "config", "--root", t.TempDir()); err == nil {
		t.Fatal("expected error outside a generated project")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "ngfs ") {
		t.Errorf("version output = %q", out)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "").Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("empty level logged %q", buf.String())
	}

	newLogger(&buf, "warn").Info("hidden")
	newLogger(&buf, "warn").Warn("shown")
	if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "shown") {
		t.Errorf("warn logger output = %q", got)
	}
}
