package subgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/ngfs/internal/compose"
	"github.com/modu-ai/ngfs/internal/store"
)

// ComponentKey is the store key holding the component generator options.
const ComponentKey = "ngComponent"

// ComponentGenerator records the options later used to scaffold client
// components (routes, directives, filters, services).
type ComponentGenerator struct {
	store  store.Store
	logger *slog.Logger
}

// NewComponentGenerator creates a ComponentGenerator. A nil logger discards output.
func NewComponentGenerator(s store.Store, logger *slog.Logger) *ComponentGenerator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ComponentGenerator{store: s, logger: logger}
}

// Configure persists req under ComponentKey and flushes the store.
// Existing options are kept unless req.ForceConfig is set; the first result
// reports whether the options were written.
func (g *ComponentGenerator) Configure(ctx context.Context, req compose.ComponentRequest) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, exists := g.store.Get(ComponentKey); exists && !req.ForceConfig {
		g.logger.Debug("component options kept", "key", ComponentKey)
		return false, nil
	}

	g.store.Set(ComponentKey, componentOptions(req))
	if err := g.store.Flush(); err != nil {
		return false, fmt.Errorf("component configure: %w", err)
	}
	g.logger.Debug("component options written", "filters", req.Filters, "extensions", req.Extensions)
	return true, nil
}

// componentOptions converts the request into a plain map, so the stored
// value reads back the same from memory and from disk.
func componentOptions(req compose.ComponentRequest) map[string]any {
	return map[string]any{
		"routeDirectory":     req.RouteDirectory,
		"directiveDirectory": req.DirectiveDirectory,
		"filterDirectory":    req.FilterDirectory,
		"serviceDirectory":   req.ServiceDirectory,
		"filters":            toAny(req.Filters),
		"extensions":         toAny(req.Extensions),
		"basePath":           req.BasePath,
		"forceConfig":        req.ForceConfig,
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
