package template

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modu-ai/ngfs/internal/compose"
	"github.com/modu-ai/ngfs/internal/defs"
)

// Generator walks a template filesystem and writes the files selected by a
// compose.TemplateRequest into a project root.
type Generator interface {
	// Generate writes every included file under projectRoot. Files ending in
	// .tmpl are rendered with data and saved without the suffix.
	Generate(ctx context.Context, projectRoot string, req compose.TemplateRequest, data *TemplateContext) (*Result, error)
}

// Result lists the project-relative paths handled by Generate.
type Result struct {
	Written []string
	Skipped []string // already present and not overwritten
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generator)

// WithOverwrite replaces files that already exist at the destination.
func WithOverwrite(overwrite bool) GeneratorOption {
	return func(g *generator) {
		g.overwrite = overwrite
	}
}

// WithGeneratorLogger sets the logger. A nil logger discards output.
func WithGeneratorLogger(l *slog.Logger) GeneratorOption {
	return func(g *generator) {
		if l != nil {
			g.logger = l
		}
	}
}

type generator struct {
	fsys      fs.FS
	renderer  Renderer
	overwrite bool
	logger    *slog.Logger
}

// NewGenerator creates a Generator backed by the given filesystem.
// In production the fs.FS comes from Embedded; in tests use testing/fstest.MapFS.
func NewGenerator(fsys fs.FS, opts ...GeneratorOption) Generator {
	g := &generator{
		fsys:     fsys,
		renderer: NewRenderer(fsys),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// entry is one included template file.
type entry struct {
	src, dest string
}

// walk collects the included files, skipping excluded directories early.
func (g *generator) walk(ctx context.Context, req compose.TemplateRequest) ([]entry, error) {
	active := activeSet(req.Markers)
	seen := make(map[string]string)
	var entries []entry

	err := fs.WalkDir(g.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if d.IsDir() {
			if !dirIncluded(p, active) {
				return fs.SkipDir
			}
			return nil
		}

		dest, ok := Destination(p, req)
		if !ok {
			return nil
		}
		if prev, dup := seen[dest]; dup {
			return fmt.Errorf("template: %q and %q both map to %q", prev, p, dest)
		}
		seen[dest] = p
		entries = append(entries, entry{src: p, dest: dest})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].dest < entries[j].dest })
	return entries, nil
}

// Generate implements Generator.
func (g *generator) Generate(ctx context.Context, projectRoot string, req compose.TemplateRequest, data *TemplateContext) (*Result, error) {
	projectRoot = filepath.Clean(projectRoot)

	entries, err := g.walk(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := validateDeployPath(projectRoot, e.dest); err != nil {
			return res, err
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(e.dest))
		if !g.overwrite {
			if _, statErr := os.Stat(destPath); statErr == nil {
				res.Skipped = append(res.Skipped, e.dest)
				g.logger.Debug("template skipped, file exists", "path", e.dest)
				continue
			}
		}

		var content []byte
		if strings.HasSuffix(e.src, ".tmpl") {
			if data == nil {
				return res, fmt.Errorf("template render %q: no template context", e.src)
			}
			content, err = g.renderer.Render(e.src, data)
			if err != nil {
				return res, fmt.Errorf("template render %q: %w", e.src, err)
			}
		} else {
			content, err = fs.ReadFile(g.fsys, e.src)
			if err != nil {
				return res, fmt.Errorf("template read %q: %w", e.src, err)
			}
		}

		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return res, fmt.Errorf("template mkdir %q: %w", filepath.Dir(destPath), err)
		}
		perm := fs.FileMode(defs.FilePerm)
		if strings.HasSuffix(e.dest, ".sh") {
			perm = defs.DirPerm
		}
		if err := os.WriteFile(destPath, content, perm); err != nil {
			return res, fmt.Errorf("template write %q: %w", destPath, err)
		}
		res.Written = append(res.Written, e.dest)
		g.logger.Debug("template written", "src", e.src, "dest", e.dest)
	}
	return res, nil
}

// validateDeployPath ensures a destination path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}
