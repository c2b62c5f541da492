package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/ngfs/internal/cli/wizard"
	"github.com/modu-ai/ngfs/internal/config"
	"github.com/modu-ai/ngfs/internal/core/project"
	"github.com/modu-ai/ngfs/internal/resolver"
	"github.com/modu-ai/ngfs/internal/ui"
	"github.com/modu-ai/ngfs/pkg/version"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Generate a new AngularJS full-stack project",
		Long: `Generate an AngularJS client and Express server in the project root.

The app name defaults to the root directory name. When the root already holds
a stored configuration you are asked whether to reuse it; reusing skips every
question and regenerates from the stored answers.

Examples:
  ngfs init                       Generate in the current directory
  ngfs init shop --root ./shop    Generate the "shop" app in ./shop
  ngfs init --non-interactive --answers answers.yaml --skip-install`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: validateInitFlags,
		RunE:    runInit,
	}

	cmd.Flags().String("root", "", "Project root directory (default: current directory)")
	cmd.Flags().Bool("skip-install", false, "Do not install dependencies")
	cmd.Flags().String("app-suffix", config.DefaultAppSuffix, "Suffix added to the Angular module name")
	cmd.Flags().Bool("non-interactive", false, "Answer every question from --answers and the defaults")
	cmd.Flags().String("answers", "", "YAML file with pre-filled answers, keyed by question ID")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().Bool("force", false, "Overwrite existing project files")
	return cmd
}

// initOptions collects the invocation options from flags and the environment.
func initOptions(cmd *cobra.Command, args []string) (config.Options, error) {
	opts := config.NewDefaultOptions()

	opts.Root = getStringFlag(cmd, "root")
	if opts.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return opts, fmt.Errorf("get working directory: %w", err)
		}
		opts.Root = cwd
	}
	if len(args) > 0 && args[0] != "." {
		opts.Name = args[0]
	}

	opts.AppSuffix = getStringFlag(cmd, "app-suffix")
	opts.SkipInstall = getBoolFlag(cmd, "skip-install")
	opts.NonInteractive = getBoolFlag(cmd, "non-interactive")
	opts.AnswersFile = getStringFlag(cmd, "answers")
	opts.LogLevel = getStringFlag(cmd, "log-level")
	opts.NoColor = getBoolFlag(cmd, "no-color")
	opts.Force = getBoolFlag(cmd, "force")
	if getBoolFlag(cmd, "verbose") && opts.LogLevel == "" {
		opts.LogLevel = "debug"
	}

	config.ApplyEnvOverrides(&opts)
	return opts, opts.Validate()
}

// validateInitFlags validates flag values before execution.
func validateInitFlags(cmd *cobra.Command, args []string) error {
	_, err := initOptions(cmd, args)
	return err
}

// runInit generates the project.
func runInit(cmd *cobra.Command, args []string) error {
	opts, err := initOptions(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hm := ui.NewHeadlessManager()
	if opts.NonInteractive {
		hm.ForceHeadless(true)
	}
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: opts.NoColor || hm.IsHeadless()})
	logger := newLogger(cmd.ErrOrStderr(), opts.LogLevel)

	prompter, err := buildPrompter(opts, hm, out, theme.NoColor)
	if err != nil {
		return err
	}

	runner := project.ExecRunner{}
	gen, err := project.NewGenerator(project.Dependencies{
		Prompter:  prompter,
		Runner:    runner,
		Installer: project.NewNpmInstaller(runner, theme, hm, out, logger),
		Reporter:  newConsoleReporter(out, theme, getBoolFlag(cmd, "verbose")),
		Out:       out,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if !hm.IsHeadless() {
		printBanner(out, theme, version.GetVersion())
	}

	st, err := gen.Run(cmd.Context(), opts)
	if err != nil {
		if errors.Is(err, resolver.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Generation cancelled.")
			return nil
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, theme.Card.Render(theme.Success.Render("✓ Project generated: ")+st.DisplayName))
	_, _ = fmt.Fprintln(out, renderSummary(st, theme.NoColor))
	for _, w := range st.Warnings {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprint(out, renderMarkdown(nextStepsMarkdown(st), theme.NoColor))
	return nil
}

// buildPrompter picks the prompter for the run: preset answers first, then
// an interactive form, or the question defaults when headless.
func buildPrompter(opts config.Options, hm *ui.HeadlessManager, out io.Writer, noColor bool) (resolver.Prompter, error) {
	var answers resolver.Answers
	if opts.AnswersFile != "" {
		a, err := wizard.LoadAnswers(opts.AnswersFile)
		if err != nil {
			return nil, err
		}
		answers = a
	}

	if hm.IsHeadless() {
		return wizard.NewPresetPrompter(answers, nil), nil
	}
	form := wizard.NewFormPrompter(out, noColor)
	if answers == nil {
		return form, nil
	}
	return wizard.NewPresetPrompter(answers, form), nil
}
