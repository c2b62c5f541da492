package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/ngfs/internal/resolver"
)

// ErrInvalidAnswers indicates an answers file that cannot be used.
var ErrInvalidAnswers = errors.New("wizard: invalid answers file")

// PresetPrompter answers questions from preset values. Questions without a
// preset go to the fallback prompter, or take their default when there is
// no fallback.
type PresetPrompter struct {
	answers  resolver.Answers
	fallback resolver.Prompter
}

// NewPresetPrompter creates a PresetPrompter. answers and fallback may be nil.
func NewPresetPrompter(answers resolver.Answers, fallback resolver.Prompter) *PresetPrompter {
	if answers == nil {
		answers = resolver.Answers{}
	}
	return &PresetPrompter{answers: answers, fallback: fallback}
}

// Section forwards batch headings to the fallback when it shows them.
func (p *PresetPrompter) Section(title string) {
	if s, ok := p.fallback.(resolver.Sectioner); ok {
		s.Section(title)
	}
}

// Ask returns the preset for q, the fallback's answer, or q's default.
func (p *PresetPrompter) Ask(ctx context.Context, q resolver.Question) ([]string, error) {
	if vals, ok := p.answers[q.ID]; ok {
		return vals, nil
	}
	if p.fallback != nil {
		return p.fallback.Ask(ctx, q)
	}
	return Default(q), nil
}

// Default returns the values a question takes when nobody answers it.
func Default(q resolver.Question) []string {
	switch q.Kind {
	case resolver.KindMultiSelect:
		vals := []string{}
		for _, o := range q.Options {
			if o.Checked {
				vals = append(vals, o.Value)
			}
		}
		return vals
	case resolver.KindConfirm:
		b, _ := strconv.ParseBool(q.Default)
		return []string{strconv.FormatBool(b)}
	default:
		if q.Default != "" {
			return []string{q.Default}
		}
		if len(q.Options) > 0 {
			return []string{q.Options[0].Value}
		}
		return nil
	}
}

// LoadAnswers reads a YAML answers file mapping question IDs to a string,
// a boolean, or a list of strings.
func LoadAnswers(path string) (resolver.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes an answers document.
func ParseAnswers(data []byte) (resolver.Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}

	out := resolver.Answers{}
	for id, v := range raw {
		vals, err := answerValues(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAnswers, id, err)
		}
		out[id] = vals
	}
	return out, nil
}

func answerValues(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return []string{t}, nil
	case bool:
		return []string{strconv.FormatBool(t)}, nil
	case []any:
		vals := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %v is not a string", item)
			}
			vals = append(vals, s)
		}
		return vals, nil
	default:
		return nil, fmt.Errorf("unsupported value %v", v)
	}
}
