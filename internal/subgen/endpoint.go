package subgen

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/jinzhu/inflection"

	"github.com/modu-ai/ngfs/internal/compose"
	"github.com/modu-ai/ngfs/internal/config"
	"github.com/modu-ai/ngfs/internal/defs"
	"github.com/modu-ai/ngfs/internal/flags"
	"github.com/modu-ai/ngfs/internal/store"
	"github.com/modu-ai/ngfs/internal/template"
)

// nameToken is the file-name prefix replaced by the endpoint name.
const nameToken = "name."

// EndpointContext is the template data of an endpoint.
type EndpointContext struct {
	Name      string // e.g. "thing"
	ClassName string // e.g. "Thing"
	Route     string // e.g. "/api/things"
	Models    string // "mongoose", "sequelize" or empty
	SqldbPath string // require path from the endpoint to the sequelize module
}

// EndpointResult lists what an endpoint generation changed.
type EndpointResult struct {
	Written    []string // project-relative endpoint files
	Registered []string // project-relative files that received a registration
	Warnings   []string
}

// EndpointGenerator scaffolds a REST endpoint and registers it with the
// server's route, socket and model modules.
type EndpointGenerator struct {
	fsys   fs.FS
	store  store.Reader
	logger *slog.Logger
}

// NewEndpointGenerator creates an EndpointGenerator reading its generation
// parameters and project filters from r. A nil logger discards output.
func NewEndpointGenerator(fsys fs.FS, r store.Reader, logger *slog.Logger) *EndpointGenerator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &EndpointGenerator{fsys: fsys, store: r, logger: logger}
}

// Generate writes the endpoint files under the configured endpoint
// directory and inserts its registrations below the configured needles.
func (g *EndpointGenerator) Generate(ctx context.Context, root string, req compose.EndpointRequest) (*EndpointResult, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: endpoint name is empty", ErrInvalidRequest)
	}
	if req.Models != "" && !req.Models.IsValid() {
		return nil, fmt.Errorf("%w: unknown models backend %q", ErrInvalidRequest, req.Models)
	}

	gen := config.LoadGeneration(g.store)
	projectFilters, _ := store.Filters(g.store)

	route := req.Route
	if route == "" {
		route = DefaultRoute(gen, req.Name)
	}

	endpointDir := path.Join(strings.TrimSuffix(gen.EndpointDirectory, "/"), req.Name)
	data := EndpointContext{
		Name:      req.Name,
		ClassName: xstrings.FirstRuneToUpper(xstrings.ToCamelCase(req.Name)),
		Route:     route,
		Models:    string(req.Models),
		SqldbPath: relRequire(endpointDir, path.Dir(gen.RegisterModelsFile)),
	}

	// Socket files only make sense with model events to broadcast.
	withSockets := projectFilters["socketio"] && req.Models != ""
	markers := []string{}
	if req.Models != "" {
		markers = append(markers, string(req.Models))
	}
	if withSockets {
		markers = append(markers, "socketio")
	}

	res := &EndpointResult{}
	if err := g.render(ctx, root, endpointDir, req.Name, markers, data, res); err != nil {
		return res, err
	}

	if gen.InsertRoutes {
		line := fmt.Sprintf("app.use('%s', require('%s'));", route, relRequire(path.Dir(gen.RegisterRoutesFile), endpointDir))
		g.register(root, gen.RegisterRoutesFile, gen.RoutesNeedle, line, res)
	}
	if gen.InsertSockets && withSockets {
		socketModule := path.Join(endpointDir, req.Name+".socket")
		line := fmt.Sprintf("require('%s').register(socket);", relRequire(path.Dir(gen.RegisterSocketsFile), socketModule))
		g.register(root, gen.RegisterSocketsFile, gen.SocketsNeedle, line, res)
	}
	if gen.InsertModels && req.Models == flags.DataSequelize {
		modelModule := path.Join(endpointDir, req.Name+".model")
		line := fmt.Sprintf("db.%s = db.sequelize.import('%s');", data.ClassName, relRequire(path.Dir(gen.RegisterModelsFile), modelModule))
		g.register(root, gen.RegisterModelsFile, gen.ModelsNeedle, line, res)
	}
	return res, nil
}

// DefaultRoute returns the route used when a request carries none.
func DefaultRoute(gen config.Generation, name string) string {
	base := gen.RoutesBase
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if gen.PluralizeRoutes {
		name = inflection.Plural(name)
	}
	return base + name
}

func (g *EndpointGenerator) render(ctx context.Context, root, endpointDir, name string, markers []string, data EndpointContext, res *EndpointResult) error {
	renderer := template.NewRenderer(g.fsys)
	req := compose.TemplateRequest{Markers: markers}

	return fs.WalkDir(g.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dest, ok := template.Destination(p, req)
		if !ok {
			return nil
		}
		if base := path.Base(dest); strings.HasPrefix(base, nameToken) {
			dest = path.Join(path.Dir(dest), name+"."+strings.TrimPrefix(base, nameToken))
		}
		rel := path.Join(endpointDir, dest)

		var content []byte
		if strings.HasSuffix(p, ".tmpl") {
			content, err = renderer.Render(p, data)
		} else {
			content, err = fs.ReadFile(g.fsys, p)
		}
		if err != nil {
			return fmt.Errorf("endpoint %s: %w", p, err)
		}

		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), defs.DirPerm); err != nil {
			return fmt.Errorf("endpoint mkdir: %w", err)
		}
		if err := os.WriteFile(abs, content, defs.FilePerm); err != nil {
			return fmt.Errorf("endpoint write %s: %w", rel, err)
		}
		res.Written = append(res.Written, rel)
		g.logger.Debug("endpoint file written", "path", rel)
		return nil
	})
}

// register inserts line below needle in file. A missing file or needle is
// reported as a warning, not an error.
func (g *EndpointGenerator) register(root, file, needle, line string, res *EndpointResult) {
	abs := filepath.Join(root, filepath.FromSlash(file))
	changed, err := InsertBelowNeedle(abs, needle, line)
	if err != nil {
		msg := fmt.Sprintf("could not register in %s: %v", file, err)
		res.Warnings = append(res.Warnings, msg)
		g.logger.Warn("endpoint registration skipped", "file", file, "error", err)
		return
	}
	if changed {
		res.Registered = append(res.Registered, file)
	}
}

// relRequire returns a "./"-prefixed require path from dir to target.
func relRequire(dir, target string) string {
	rel, err := filepath.Rel(filepath.FromSlash(dir), filepath.FromSlash(target))
	if err != nil {
		return target
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}
