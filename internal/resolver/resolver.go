// Package resolver turns interactive answers, or a previously persisted
// filter map, into a consistent flags.Flags value.
//
// Questions are asked in three batches (client, server, project). Each batch
// is folded into the flag set by a pure step function, so the rules can be
// tested without a terminal.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/modu-ai/ngfs/internal/flags"
)

// Step names, shared with the stage pipeline.
const (
	StepClient  = "clientPrompts"
	StepServer  = "serverPrompts"
	StepProject = "projectPrompts"
)

// Sentinel errors for resolution.
var (
	// ErrCancelled indicates the user aborted a prompt.
	ErrCancelled = errors.New("resolver: cancelled by user")

	// ErrUnknownAnswer indicates an answer outside the question's options.
	ErrUnknownAnswer = errors.New("resolver: unknown answer")

	// ErrMissingAnswer indicates a required question was not answered.
	ErrMissingAnswer = errors.New("resolver: missing answer")
)

// Prompter asks a single question and returns its raw values: one value for
// select and confirm questions, zero or more for multi-select questions.
type Prompter interface {
	Ask(ctx context.Context, q Question) ([]string, error)
}

// Sectioner is optionally implemented by prompters that show batch headings.
type Sectioner interface {
	Section(title string)
}

// Step is one question batch and the rule that folds it into Flags.
type Step struct {
	Batch Batch
	Apply func(flags.Flags, Answers) (flags.Flags, error)
}

// Steps returns the three prompt steps in order.
func Steps() []Step {
	return []Step{
		{Batch: ClientQuestions(), Apply: func(f flags.Flags, a Answers) (flags.Flags, error) {
			c, err := DecodeClient(a)
			if err != nil {
				return f, err
			}
			return ApplyClient(f, c), nil
		}},
		{Batch: ServerQuestions(), Apply: func(f flags.Flags, a Answers) (flags.Flags, error) {
			s, err := DecodeServer(a)
			if err != nil {
				return f, err
			}
			return ApplyServer(f, s), nil
		}},
		{Batch: ProjectQuestions(), Apply: func(f flags.Flags, a Answers) (flags.Flags, error) {
			p, err := DecodeProject(a)
			if err != nil {
				return f, err
			}
			return ApplyProject(f, p), nil
		}},
	}
}

// Reuse rebuilds the flag set of a stored configuration. An inconsistent
// document yields an *flags.InconsistencyError.
func Reuse(existing flags.Filters) (flags.Flags, error) {
	return flags.Decode(existing)
}

// Resolver drives a Prompter through the question batches.
type Resolver struct {
	prompter Prompter
	logger   *slog.Logger
}

// New creates a Resolver. A nil logger discards output.
func New(p Prompter, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{prompter: p, logger: logger}
}

// Collect asks every question of the batch whose condition holds against
// the answers gathered so far, in order.
func (r *Resolver) Collect(ctx context.Context, b Batch) (Answers, error) {
	if s, ok := r.prompter.(Sectioner); ok && b.Title != "" {
		s.Section(b.Title)
	}

	answers := Answers{}
	for _, q := range b.Questions {
		if q.When != nil && !q.When(answers) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vals, err := r.prompter.Ask(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		if err := checkAnswer(q, vals); err != nil {
			return nil, err
		}
		answers[q.ID] = vals
		r.logger.Debug("answered", "batch", b.Name, "question", q.ID, "values", vals)
	}
	return answers, nil
}

// Run asks one step's batch and folds the answers into f.
func (r *Resolver) Run(ctx context.Context, s Step, f flags.Flags) (flags.Flags, error) {
	answers, err := r.Collect(ctx, s.Batch)
	if err != nil {
		return f, err
	}
	return s.Apply(f, answers)
}

// ConfirmReuse asks whether a persisted configuration should be reused.
// It is only asked when existing is non-empty.
func (r *Resolver) ConfirmReuse(ctx context.Context, existing flags.Filters) (bool, error) {
	if len(existing) == 0 {
		return false, nil
	}
	q := ReuseQuestion()
	vals, err := r.prompter.Ask(ctx, q)
	if err != nil {
		return false, fmt.Errorf("question %s: %w", q.ID, err)
	}
	if err := checkAnswer(q, vals); err != nil {
		return false, err
	}
	reuse, _ := strconv.ParseBool(vals[0])
	r.logger.Debug("reuse decision", "reuse", reuse)
	return reuse, nil
}

// Resolve produces the flag set for a run in one call. A reused
// configuration is decoded from existing; otherwise every batch is asked and
// the result validated. The second result reports whether existing was
// reused. The generator pipeline runs the same parts (ConfirmReuse, Steps,
// Run, Reuse) as separate steps.
func (r *Resolver) Resolve(ctx context.Context, existing flags.Filters) (flags.Flags, bool, error) {
	reuse, err := r.ConfirmReuse(ctx, existing)
	if err != nil {
		return flags.Flags{}, false, err
	}
	if reuse {
		f, err := Reuse(existing)
		return f, true, err
	}

	var f flags.Flags
	for _, s := range Steps() {
		if f, err = r.Run(ctx, s, f); err != nil {
			return flags.Flags{}, false, fmt.Errorf("%s: %w", s.Batch.Name, err)
		}
	}
	if err := f.Validate(); err != nil {
		return flags.Flags{}, false, err
	}
	return f, false, nil
}
