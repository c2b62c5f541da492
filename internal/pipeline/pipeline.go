// Package pipeline runs the generator's named steps through five fixed
// phases: Initialize, Prompt, Configure, Write and Install.
//
// Steps run strictly in order and the first error aborts the run. Steps
// marked SkipOnReuse are skipped, all together, when the skip signal was set
// at the start of their phase.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Phase is one stage of a generator run.
type Phase int

const (
	PhaseInitialize Phase = iota
	PhasePrompt
	PhaseConfigure
	PhaseWrite
	PhaseInstall
)

// Phases lists all phases in execution order.
var Phases = []Phase{PhaseInitialize, PhasePrompt, PhaseConfigure, PhaseWrite, PhaseInstall}

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitialize:
		return "initialize"
	case PhasePrompt:
		return "prompt"
	case PhaseConfigure:
		return "configure"
	case PhaseWrite:
		return "write"
	case PhaseInstall:
		return "install"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// StepFunc is the body of a step. It reads and updates the shared state.
type StepFunc func(ctx context.Context, st *State) error

// Step is a named unit of work within a phase.
type Step struct {
	Name        string
	SkipOnReuse bool // skipped when a stored configuration is reused
	Run         StepFunc
}

// StepError wraps the error of the step that aborted the run.
type StepError struct {
	Phase Phase
	Step  string
	Err   error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Phase, e.Step, e.Err)
}

// Unwrap returns the underlying step error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Reporter receives progress events.
type Reporter interface {
	PhaseStarted(phase Phase)
	StepStarted(phase Phase, step string)
	StepSkipped(phase Phase, step string)
	StepDone(phase Phase, step string)
}

// NopReporter ignores all events.
type NopReporter struct{}

func (NopReporter) PhaseStarted(Phase) {}
func (NopReporter) StepStarted(Phase, string) {}
func (NopReporter) StepSkipped(Phase, string) {}
func (NopReporter) StepDone(Phase, string) {}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.reporter = r
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// Pipeline holds the steps of every phase.
type Pipeline struct {
	steps    map[Phase][]Step
	reporter Reporter
	logger   *slog.Logger
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:    make(map[Phase][]Step),
		reporter: NopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends steps to a phase. Step names must be unique across the pipeline.
func (p *Pipeline) Add(phase Phase, steps ...Step) error {
	for _, s := range steps {
		if s.Name == "" || s.Run == nil {
			return fmt.Errorf("pipeline: step in %s needs a name and a body", phase)
		}
		if _, ok := p.find(s.Name); ok {
			return fmt.Errorf("pipeline: duplicate step %q", s.Name)
		}
		p.steps[phase] = append(p.steps[phase], s)
	}
	return nil
}

// StepNames returns the step names of a phase, in order.
func (p *Pipeline) StepNames(phase Phase) []string {
	names := make([]string, 0, len(p.steps[phase]))
	for _, s := range p.steps[phase] {
		names = append(names, s.Name)
	}
	return names
}

func (p *Pipeline) find(name string) (Phase, bool) {
	for phase, steps := range p.steps {
		for _, s := range steps {
			if s.Name == name {
				return phase, true
			}
		}
	}
	return 0, false
}

// Run executes every phase in order against st.
//
// The skip signal is read once when a phase starts; a step that sets it
// affects later phases only. Context cancellation is checked before each
// step. The first step error aborts the run as a *StepError.
func (p *Pipeline) Run(ctx context.Context, st *State) error {
	for _, phase := range Phases {
		steps := p.steps[phase]
		if len(steps) == 0 {
			continue
		}

		skip := st.SkipConfig
		p.reporter.PhaseStarted(phase)
		p.logger.Debug("phase started", "phase", phase.String(), "skip_config", skip)

		for _, s := range steps {
			if err := ctx.Err(); err != nil {
				return &StepError{Phase: phase, Step: s.Name, Err: err}
			}

			if s.SkipOnReuse && skip {
				st.Trace = append(st.Trace, TraceEntry{Phase: phase, Step: s.Name, Skipped: true})
				p.reporter.StepSkipped(phase, s.Name)
				p.logger.Debug("step skipped", "phase", phase.String(), "step", s.Name)
				continue
			}

			p.reporter.StepStarted(phase, s.Name)
			if err := s.Run(ctx, st); err != nil {
				p.logger.Debug("step failed", "phase", phase.String(), "step", s.Name, "error", err)
				return &StepError{Phase: phase, Step: s.Name, Err: err}
			}
			st.Trace = append(st.Trace, TraceEntry{Phase: phase, Step: s.Name})
			p.reporter.StepDone(phase, s.Name)
		}
	}
	return nil
}
