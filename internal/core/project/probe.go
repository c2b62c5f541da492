package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// unknownVersion is reported when the probe failed or has not finished.
const unknownVersion = "unknown"

// VersionProbe runs `npm --version` in the background while the project is
// generated. Its result is collected once, after the pipeline.
type VersionProbe struct {
	ch     chan string
	result string
}

// StartProbe launches the probe in its own goroutine.
func StartProbe(ctx context.Context, runner CommandRunner, logger *slog.Logger) *VersionProbe {
	p := &VersionProbe{ch: make(chan string, 1)}
	go func() {
		v, err := probeNpm(ctx, runner)
		if err != nil {
			logger.Debug("version probe", "error", err)
			v = unknownVersion
		}
		p.ch <- v
	}()
	return p
}

func probeNpm(ctx context.Context, runner CommandRunner) (string, error) {
	out, err := runner.Run(ctx, "", "npm", "--version")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}
	v, err := semver.NewVersion(strings.TrimSpace(string(out)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}
	return v.String(), nil
}

// Wait returns the probed npm version, blocking until the probe finishes or
// ctx is done. It is "unknown" when the probe failed, did not finish in time,
// or was never started.
func (p *VersionProbe) Wait(ctx context.Context) string {
	if p == nil {
		return unknownVersion
	}
	if p.result != "" {
		return p.result
	}
	select {
	case v := <-p.ch:
		p.result = v
		return v
	case <-ctx.Done():
		return unknownVersion
	}
}
