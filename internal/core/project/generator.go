package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/modu-ai/ngfs/internal/compose"
	"github.com/modu-ai/ngfs/internal/config"
	"github.com/modu-ai/ngfs/internal/defs"
	"github.com/modu-ai/ngfs/internal/flags"
	"github.com/modu-ai/ngfs/internal/pipeline"
	"github.com/modu-ai/ngfs/internal/resolver"
	"github.com/modu-ai/ngfs/internal/store"
	"github.com/modu-ai/ngfs/internal/subgen"
	"github.com/modu-ai/ngfs/internal/template"
	"github.com/modu-ai/ngfs/internal/ui"
	"github.com/modu-ai/ngfs/pkg/version"
)

// Step names wired by the generator. The prompt step names come from the
// resolver package.
const (
	StepInit            = "init"
	StepInfo            = "info"
	StepCheckForConfig  = "checkForConfig"
	StepSaveSettings    = "saveSettings"
	StepDeriveSettings  = "deriveSettings"
	StepNgComponent     = "ngComponent"
	StepGenerateProject = "generateProject"
	StepGenerateEndpt   = "generateEndpoint"
	StepInstallDeps     = "installDeps"
)

// probeWait bounds how long Run waits for the npm version probe.
const probeWait = 2 * time.Second

// welcomeText is printed by the info step.
const welcomeText = "Out of the box I create an AngularJS app with an Express server.\n"

// Dependencies are the collaborators of a Generator. Nil fields take a
// working default where one exists.
type Dependencies struct {
	Prompter          resolver.Prompter // required
	Templates         fs.FS             // project tree; default: embedded
	EndpointTemplates fs.FS             // endpoint tree; default: embedded
	Runner            CommandRunner     // default: ExecRunner
	Installer         Installer         // default: NpmInstaller on Runner, writing to Out
	Reporter          pipeline.Reporter // default: none
	Out               io.Writer         // welcome and install output; default: io.Discard
	Logger            *slog.Logger      // default: discard
}

// Generator runs the full scaffolding pipeline for one project.
type Generator struct {
	deps     Dependencies
	resolver *resolver.Resolver
	probe    *VersionProbe
	logger   *slog.Logger
}

// NewGenerator creates a Generator with the given dependencies.
func NewGenerator(deps Dependencies) (*Generator, error) {
	if deps.Prompter == nil {
		return nil, fmt.Errorf("generator: prompter is required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Templates == nil {
		fsys, err := template.Embedded()
		if err != nil {
			return nil, fmt.Errorf("load embedded templates: %w", err)
		}
		deps.Templates = fsys
	}
	if deps.EndpointTemplates == nil {
		fsys, err := subgen.EndpointTemplates()
		if err != nil {
			return nil, fmt.Errorf("load endpoint templates: %w", err)
		}
		deps.EndpointTemplates = fsys
	}
	if deps.Runner == nil {
		deps.Runner = ExecRunner{}
	}
	if deps.Installer == nil {
		deps.Installer = NewNpmInstaller(deps.Runner, ui.NewTheme(ui.ThemeConfig{NoColor: true}), ui.NewHeadlessManager(), deps.Out, deps.Logger)
	}
	if deps.Reporter == nil {
		deps.Reporter = pipeline.NopReporter{}
	}

	return &Generator{
		deps:     deps,
		resolver: resolver.New(deps.Prompter, deps.Logger),
		logger:   deps.Logger,
	}, nil
}

// Pipeline builds the stage pipeline with every generator step.
func (g *Generator) Pipeline() (*pipeline.Pipeline, error) {
	p := pipeline.New(pipeline.WithReporter(g.deps.Reporter), pipeline.WithLogger(g.logger))

	phases := []struct {
		phase pipeline.Phase
		steps []pipeline.Step
	}{
		{pipeline.PhaseInitialize, []pipeline.Step{
			{Name: StepInit, Run: g.initialize},
			{Name: StepInfo, Run: g.info},
			{Name: StepCheckForConfig, Run: g.checkForConfig},
		}},
		{pipeline.PhasePrompt, g.promptSteps()},
		{pipeline.PhaseConfigure, []pipeline.Step{
			{Name: StepSaveSettings, SkipOnReuse: true, Run: g.saveSettings},
			{Name: StepDeriveSettings, Run: g.deriveSettings},
			{Name: StepNgComponent, SkipOnReuse: true, Run: g.ngComponent},
		}},
		{pipeline.PhaseWrite, []pipeline.Step{
			{Name: StepGenerateProject, Run: g.generateProject},
			{Name: StepGenerateEndpt, Run: g.generateEndpoint},
		}},
		{pipeline.PhaseInstall, []pipeline.Step{
			{Name: StepInstallDeps, Run: g.installDeps},
		}},
	}

	for _, ph := range phases {
		if err := p.Add(ph.phase, ph.steps...); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run generates the project described by opts. The returned state is
// non-nil even when the run fails, so callers can report partial progress.
func (g *Generator) Run(ctx context.Context, opts config.Options) (*pipeline.State, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	opts.Root = root

	s, err := store.Open(root)
	if err != nil {
		return nil, err
	}

	p, err := g.Pipeline()
	if err != nil {
		return nil, err
	}

	g.probe = nil
	st := &pipeline.State{Options: opts, Store: s}
	err = p.Run(ctx, st)

	waitCtx, cancel := context.WithTimeout(ctx, probeWait)
	defer cancel()
	st.NpmVersion = g.probe.Wait(waitCtx)
	return st, err
}

// --- Initialize ---

func (g *Generator) initialize(_ context.Context, st *pipeline.State) error {
	st.GeneratorVersion = version.GetVersion()
	st.Store.Set(config.KeyGeneratorVersion, st.GeneratorVersion)

	names := AppNames(st.Options.Name, st.Options.Root, st.Options.AppSuffix)
	st.AppName, st.DisplayName, st.ScriptAppName = names.App, names.Display, names.Script

	g.logger.Info("generating project",
		"root", st.Options.Root,
		"app", st.AppName,
		"module", st.ScriptAppName,
		"version", st.GeneratorVersion,
	)
	return nil
}

func (g *Generator) info(ctx context.Context, _ *pipeline.State) error {
	g.probe = StartProbe(ctx, g.deps.Runner, g.logger)
	g.logger.Debug("environment", "platform", runtime.GOOS, "arch", runtime.GOARCH)
	_, _ = fmt.Fprint(g.deps.Out, welcomeText)
	return nil
}

func (g *Generator) checkForConfig(ctx context.Context, st *pipeline.State) error {
	existing, ok := store.Filters(st.Store)
	if !ok {
		return nil
	}
	st.ExistingFilters = existing

	reuse, err := g.resolver.ConfirmReuse(ctx, existing)
	if err != nil {
		return err
	}
	if reuse {
		st.SkipConfig = true
		return nil
	}

	// Declined: forget the stored flags for this run. Nothing is flushed
	// until saveSettings.
	st.Store.Delete(store.FiltersKey)
	st.ForceConfig = true
	return nil
}

// --- Prompt ---

// promptSteps returns one step per resolver batch, in resolver order.
func (g *Generator) promptSteps() []pipeline.Step {
	var steps []pipeline.Step
	for _, rs := range resolver.Steps() {
		rs := rs
		steps = append(steps, pipeline.Step{
			Name:        rs.Batch.Name,
			SkipOnReuse: true,
			Run: func(ctx context.Context, st *pipeline.State) error {
				f, err := g.resolver.Run(ctx, rs, st.Flags)
				if err != nil {
					return err
				}
				st.Flags = f
				return nil
			},
		})
	}
	return steps
}

// --- Configure ---

func (g *Generator) saveSettings(_ context.Context, st *pipeline.State) error {
	if err := st.Flags.Validate(); err != nil {
		return err
	}
	config.NewDefaultGeneration().Apply(st.Store)
	st.Store.Set(store.FiltersKey, flags.Encode(st.Flags))
	return st.Store.Flush()
}

func (g *Generator) deriveSettings(_ context.Context, st *pipeline.State) error {
	if st.SkipConfig {
		f, err := resolver.Reuse(st.ExistingFilters)
		if err != nil {
			return err
		}
		st.Flags = f
		// saveSettings is skipped on reuse; record this run's generatorVersion.
		if err := st.Store.Flush(); err != nil {
			return err
		}
	}
	if err := st.Flags.Validate(); err != nil {
		return err
	}

	st.Settings = flags.Derive(st.Flags)
	st.Generation = config.LoadGeneration(st.Store)

	plan, err := compose.Build(st.Flags, st.Settings, compose.Input{
		ScriptAppName: st.ScriptAppName,
		ForceConfig:   st.ForceConfig,
	})
	if err != nil {
		return err
	}
	st.Plan = plan

	g.logger.Debug("settings derived",
		"script", st.Settings.ScriptExt,
		"markup", st.Settings.TemplateExt,
		"style", st.Settings.StyleExt,
		"modules", len(plan.Modules),
	)
	return nil
}

func (g *Generator) ngComponent(ctx context.Context, st *pipeline.State) error {
	_, err := subgen.NewComponentGenerator(st.Store, g.logger).Configure(ctx, st.Plan.Component)
	return err
}

// --- Write ---

func (g *Generator) generateProject(ctx context.Context, st *pipeline.State) error {
	data := template.NewTemplateContext(
		template.WithApp(st.AppName, st.DisplayName, st.ScriptAppName),
		template.WithFilters(st.Plan.Template.Filters),
		template.WithSettings(st.Settings),
		template.WithModules(compose.FormatModules(st.Plan.Modules)),
		template.WithModels(st.Plan.Endpoint.Models),
		template.WithVersion(st.GeneratorVersion),
		template.WithPlatform(runtime.GOOS),
	)

	gen := template.NewGenerator(g.deps.Templates,
		template.WithOverwrite(st.Options.Force),
		template.WithGeneratorLogger(g.logger),
	)
	res, err := gen.Generate(ctx, st.Options.Root, st.Plan.Template, data)
	if res != nil {
		st.Written = append(st.Written, res.Written...)
		st.Kept = append(st.Kept, res.Skipped...)
	}
	return err
}

func (g *Generator) generateEndpoint(ctx context.Context, st *pipeline.State) error {
	gen := subgen.NewEndpointGenerator(g.deps.EndpointTemplates, st.Store, g.logger)
	res, err := gen.Generate(ctx, st.Options.Root, st.Plan.Endpoint)
	if res != nil {
		st.Written = append(st.Written, res.Written...)
		st.Warnings = append(st.Warnings, res.Warnings...)
	}
	return err
}

// --- Install ---

func (g *Generator) installDeps(ctx context.Context, st *pipeline.State) error {
	if st.Options.SkipInstall {
		g.logger.Info("dependency installation skipped")
		return nil
	}
	if err := g.deps.Installer.Install(ctx, st.Options.Root); err != nil {
		return err
	}
	st.Installed = true
	return nil
}
