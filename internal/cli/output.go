package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/modu-ai/ngfs/internal/flags"
	"github.com/modu-ai/ngfs/internal/pipeline"
	"github.com/modu-ai/ngfs/internal/ui"
)

// CLI output styles.
var (
	cliWarn  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: ui.ColorWarning})
	cliError = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError})
)

const banner = `
   _  __  ___  ____  ____
  / |/ / / _ \/ __/ / __/
 /    / / (_ / _/  _\ \
/_/|_/  \___/_/   /___/
`

// printBanner prints the generator banner and version.
func printBanner(w io.Writer, theme *ui.Theme, ver string) {
	_, _ = fmt.Fprintln(w, theme.Title.Render(banner))
	_, _ = fmt.Fprintln(w, theme.Muted.Render("  AngularJS full-stack generator "+ver))
	_, _ = fmt.Fprintln(w)
}

// consoleReporter prints pipeline progress. Step events are only shown in
// verbose mode; phases are always shown.
type consoleReporter struct {
	w       io.Writer
	theme   *ui.Theme
	verbose bool
}

func newConsoleReporter(w io.Writer, theme *ui.Theme, verbose bool) *consoleReporter {
	return &consoleReporter{w: w, theme: theme, verbose: verbose}
}

func (r *consoleReporter) PhaseStarted(phase pipeline.Phase) {
	_, _ = fmt.Fprintln(r.w, r.theme.Title.Render("▸ "+phase.String()))
}

func (r *consoleReporter) StepStarted(pipeline.Phase, string) {}

func (r *consoleReporter) StepSkipped(_ pipeline.Phase, step string) {
	if r.verbose {
		_, _ = fmt.Fprintf(r.w, "  %s %s\n", r.theme.Muted.Render("○"), r.theme.Muted.Render(step+" (stored configuration)"))
	}
}

func (r *consoleReporter) StepDone(_ pipeline.Phase, step string) {
	if r.verbose {
		_, _ = fmt.Fprintf(r.w, "  %s %s\n", r.theme.Success.Render("✓"), step)
	}
}

// renderSummary renders the run summary table.
func renderSummary(st *pipeline.State, noColor bool) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	key := func(s string) string {
		if noColor {
			return s
		}
		return text.FgHiCyan.Sprint(s)
	}
	row := func(k, v string) {
		t.AppendRow(table.Row{key(k), v})
	}

	f := st.Flags
	row("App module", st.ScriptAppName)
	row("Client", fmt.Sprintf("%s / %s / %s", st.Settings.ScriptExt, st.Settings.TemplateExt, st.Settings.StyleExt))
	row("Router", string(f.Router))
	row("Data layers", joinOr(f.DataLayers, "none"))
	if f.Auth {
		row("Auth", strings.TrimSpace("local "+joinOr(f.OAuth, "")))
	}
	row("Socket.io", yesNo(f.SocketIO))
	row("Build / tests", fmt.Sprintf("%s / %s", f.BuildTool, testStack(f)))
	row("Files written", fmt.Sprintf("%d", len(st.Written)))
	if len(st.Kept) > 0 {
		row("Files kept", fmt.Sprintf("%d (use --force to overwrite)", len(st.Kept)))
	}
	row("npm", st.NpmVersion)
	row("Platform", runtime.GOOS+"/"+runtime.GOARCH)

	return t.Render()
}

// nextStepsMarkdown returns the follow-up instructions for a finished run.
func nextStepsMarkdown(st *pipeline.State) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	if !st.Installed {
		b.WriteString("- Install dependencies: `npm install`\n")
	}
	fmt.Fprintf(&b, "- Start the dev server: `%s serve`\n", st.Flags.BuildTool)
	fmt.Fprintf(&b, "- Run the tests: `%s test`\n", st.Flags.BuildTool)
	return b.String()
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string, noColor bool) string {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func joinOr[T ~string](items []T, empty string) string {
	if len(items) == 0 {
		return empty
	}
	ss := make([]string, len(items))
	for i, it := range items {
		ss[i] = string(it)
	}
	return strings.Join(ss, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func testStack(f flags.Flags) string {
	if f.Testing == flags.TestMocha && f.Assertion != "" {
		return fmt.Sprintf("%s + %s", f.Testing, f.Assertion)
	}
	return string(f.Testing)
}
