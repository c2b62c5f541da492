// Package wizard provides the prompters that answer the generator's
// questions: an interactive huh form per question, and a headless prompter
// fed from an answers file and the question defaults.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/ngfs/internal/resolver"
	"github.com/modu-ai/ngfs/internal/ui"
)

// FormPrompter asks each question as its own huh form.
// Each question runs as an independent form to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
type FormPrompter struct {
	theme   *huh.Theme
	heading lipgloss.Style
	out     io.Writer
}

// NewFormPrompter creates a FormPrompter printing section headings to out.
func NewFormPrompter(out io.Writer, noColor bool) *FormPrompter {
	p := &FormPrompter{out: out, theme: newWizardTheme(), heading: lipgloss.NewStyle().Bold(true)}
	if noColor {
		p.theme = huh.ThemeBase()
	} else {
		p.heading = p.heading.Foreground(lipgloss.Color(ui.ColorPrimary)).MarginTop(1)
	}
	return p
}

// Section prints a batch heading.
func (p *FormPrompter) Section(title string) {
	_, _ = fmt.Fprintln(p.out, p.heading.Render("# "+title))
}

// Ask runs the form for q and returns its raw values.
func (p *FormPrompter) Ask(ctx context.Context, q resolver.Question) ([]string, error) {
	var (
		field   huh.Field
		collect func() []string
	)

	switch q.Kind {
	case resolver.KindSelect:
		selected := q.Default
		if selected == "" && len(q.Options) > 0 {
			selected = q.Options[0].Value
		}
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			opts[i] = huh.NewOption(o.Label, o.Value)
		}
		field = huh.NewSelect[string]().Title(q.Title).Options(opts...).Value(&selected)
		collect = func() []string { return []string{selected} }

	case resolver.KindMultiSelect:
		var selected []string
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			opts[i] = huh.NewOption(o.Label, o.Value).Selected(o.Checked)
		}
		field = huh.NewMultiSelect[string]().Title(q.Title).Options(opts...).Value(&selected)
		collect = func() []string { return selected }

	case resolver.KindConfirm:
		confirmed, _ := strconv.ParseBool(q.Default)
		field = huh.NewConfirm().Title(q.Title).Affirmative("Yes").Negative("No").Value(&confirmed)
		collect = func() []string { return []string{strconv.FormatBool(confirmed)} }

	default:
		return nil, fmt.Errorf("unsupported question kind %d", q.Kind)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, resolver.ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	return collect(), nil
}

// newWizardTheme creates a huh.Theme with the generator's palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#B52E31", Dark: ui.ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ui.ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ui.ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
