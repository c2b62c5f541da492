package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the generator may draw interactive
// terminal UI (prompts, spinners) or must fall back to plain line output.
type HeadlessManager struct {
	forced *bool
	in     *os.File
	out    *os.File
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin and os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{in: os.Stdin, out: os.Stdout}
}

// IsHeadless reports whether the UI should operate without a terminal.
// ForceHeadless overrides detection. Otherwise both stdin and stdout must be
// terminals for interactive mode.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.in) || !isTerminal(h.out)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
