package pipeline

import (
	"github.com/modu-ai/ngfs/internal/compose"
	"github.com/modu-ai/ngfs/internal/config"
	"github.com/modu-ai/ngfs/internal/flags"
	"github.com/modu-ai/ngfs/internal/store"
)

// TraceEntry records one executed or skipped step.
type TraceEntry struct {
	Phase   Phase
	Step    string
	Skipped bool
}

// State is threaded through every step of a run.
type State struct {
	// Set before the run.
	Options config.Options
	Store   store.Store

	// Initialize
	GeneratorVersion string
	AppName          string // camelized project name
	DisplayName      string // title-cased project name
	ScriptAppName    string // AppName + suffix, the Angular module prefix
	ExistingFilters  flags.Filters
	SkipConfig       bool // reuse the stored configuration; never persisted
	ForceConfig      bool // a stored configuration was declined

	// Prompt and Configure
	Flags      flags.Flags
	Settings   flags.Settings
	Generation config.Generation
	Plan       *compose.Plan

	// Write and Install
	Written    []string // project-relative paths written
	Kept       []string // existing files left untouched
	Warnings   []string // non-fatal problems, e.g. a registration that could not be inserted
	Installed  bool
	NpmVersion string // result of the version probe, "unknown" when unavailable

	Trace []TraceEntry
}

// Ran reports whether the named step executed (was not skipped).
func (st *State) Ran(step string) bool {
	for _, e := range st.Trace {
		if e.Step == step {
			return !e.Skipped
		}
	}
	return false
}

// Skipped reports whether the named step was skipped.
func (st *State) Skipped(step string) bool {
	for _, e := range st.Trace {
		if e.Step == step {
			return e.Skipped
		}
	}
	return false
}
