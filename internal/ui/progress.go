package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	// SetTitle replaces the text shown next to the spinner.
	SetTitle(title string)
	// Stop halts the spinner. Calling Stop more than once is safe.
	Stop()
}

// NewSpinner starts a Spinner writing to w. In headless mode, or when the
// theme has no color, the title is printed as a plain line instead.
func NewSpinner(theme *Theme, hm *HeadlessManager, w io.Writer, title string) Spinner {
	if hm.IsHeadless() || theme.NoColor {
		return newHeadlessSpinner(title, w)
	}
	return newInteractiveSpinner(theme, title, w)
}

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner draws an animated bubbles spinner. The program does not
// read stdin so the npm child process keeps the terminal input.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title), tea.WithOutput(w), tea.WithInput(nil))
	s := &interactiveSpinner{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// headlessSpinner writes each title as a log line.
type headlessSpinner struct {
	writer  io.Writer
	stopped bool
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return &headlessSpinner{writer: w}
}

func (s *headlessSpinner) SetTitle(title string) {
	if s.stopped {
		return
	}
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

func (s *headlessSpinner) Stop() {
	s.stopped = true
}
