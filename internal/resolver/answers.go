package resolver

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/modu-ai/ngfs/internal/flags"
)

// Answers holds the raw answer values of one batch, keyed by question ID.
// Select and confirm questions store exactly one value.
type Answers map[string][]string

// One returns the single value of a select or confirm answer.
func (a Answers) One(id string) string {
	if v := a[id]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Many returns the values of a multi-select answer.
func (a Answers) Many(id string) []string {
	return a[id]
}

// Bool returns a confirm answer; unanswered questions are false.
func (a Answers) Bool(id string) bool {
	b, _ := strconv.ParseBool(a.One(id))
	return b
}

// Has reports whether the question was answered.
func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// ClientAnswers are the typed answers of the client batch.
type ClientAnswers struct {
	Transpiler  flags.Script
	Markup      flags.Markup
	Stylesheet  flags.Stylesheet
	Router      flags.Router
	Bootstrap   bool
	UIBootstrap bool
}

// ServerAnswers are the typed answers of the server batch.
type ServerAnswers struct {
	ODMs     []flags.DataLayer
	Models   flags.DataLayer // empty unless several ODMs were chosen
	Auth     bool
	OAuth    []flags.AuthStrategy
	SocketIO bool
}

// ProjectAnswers are the typed answers of the project batch.
type ProjectAnswers struct {
	BuildTool flags.BuildTool
	Testing   flags.TestFramework
	Chai      flags.Assertion // empty unless Testing is mocha
}

// DecodeClient converts raw client answers into their typed form.
func DecodeClient(a Answers) (ClientAnswers, error) {
	var c ClientAnswers
	var err error
	if c.Transpiler, err = required(a, QTranspiler, flags.Script.IsValid); err != nil {
		return c, err
	}
	if c.Markup, err = required(a, QMarkup, flags.Markup.IsValid); err != nil {
		return c, err
	}
	if c.Stylesheet, err = required(a, QStylesheet, flags.Stylesheet.IsValid); err != nil {
		return c, err
	}
	if c.Router, err = required(a, QRouter, flags.Router.IsValid); err != nil {
		return c, err
	}
	c.Bootstrap = a.Bool(QBootstrap)
	c.UIBootstrap = a.Bool(QUIBootstrap)
	return c, nil
}

// DecodeServer converts raw server answers into their typed form.
func DecodeServer(a Answers) (ServerAnswers, error) {
	var s ServerAnswers
	var err error
	if s.ODMs, err = many(a, QODMs, flags.DataLayer.IsValid); err != nil {
		return s, err
	}
	if a.Has(QModels) {
		if s.Models, err = required(a, QModels, flags.DataLayer.IsValid); err != nil {
			return s, err
		}
	}
	s.Auth = a.Bool(QAuth)
	if s.OAuth, err = many(a, QOAuth, flags.AuthStrategy.IsValid); err != nil {
		return s, err
	}
	s.SocketIO = a.Bool(QSocketIO)
	return s, nil
}

// DecodeProject converts raw project answers into their typed form.
func DecodeProject(a Answers) (ProjectAnswers, error) {
	var p ProjectAnswers
	var err error
	if p.BuildTool, err = required(a, QBuildTool, flags.BuildTool.IsValid); err != nil {
		return p, err
	}
	if p.Testing, err = required(a, QTesting, flags.TestFramework.IsValid); err != nil {
		return p, err
	}
	if a.Has(QChai) {
		if p.Chai, err = required(a, QChai, flags.Assertion.IsValid); err != nil {
			return p, err
		}
	}
	return p, nil
}

func required[T ~string](a Answers, id string, valid func(T) bool) (T, error) {
	v := T(a.One(id))
	if v == "" {
		return v, fmt.Errorf("%w: %s", ErrMissingAnswer, id)
	}
	if !valid(v) {
		return "", fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, id, v)
	}
	return v, nil
}

func many[T ~string](a Answers, id string, valid func(T) bool) ([]T, error) {
	var out []T
	for _, raw := range a.Many(id) {
		v := T(raw)
		if !valid(v) {
			return nil, fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, id, raw)
		}
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// checkAnswer verifies raw values against the question's cardinality and options.
func checkAnswer(q Question, vals []string) error {
	switch q.Kind {
	case KindConfirm:
		if len(vals) != 1 {
			return fmt.Errorf("%w: %s expects one value, got %d", ErrUnknownAnswer, q.ID, len(vals))
		}
		if _, err := strconv.ParseBool(vals[0]); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, q.ID, vals[0])
		}
		return nil
	case KindSelect:
		if len(vals) != 1 {
			return fmt.Errorf("%w: %s expects one value, got %d", ErrUnknownAnswer, q.ID, len(vals))
		}
	}
	for _, v := range vals {
		if !slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == v }) {
			return fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, q.ID, v)
		}
	}
	return nil
}
