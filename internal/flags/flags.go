package flags

import (
	"slices"
	"sort"
)

// Filters is the persisted name-to-boolean projection of Flags.
type Filters map[string]bool

// Active returns the names of all true filters, sorted.
func (m Filters) Active() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Flags is the resolved set of feature choices for one project.
// The zero value means "nothing chosen yet".
type Flags struct {
	// Client
	Script      Script
	Markup      Markup
	Stylesheet  Stylesheet
	Router      Router
	Bootstrap   bool
	UIBootstrap bool

	// Server
	DataLayers    []DataLayer // canonical order, see DataLayers
	HasModels     bool
	DefaultModels DataLayer
	Auth          bool
	OAuth         []AuthStrategy // canonical order, see AuthStrategies
	SocketIO      bool

	// Project
	BuildTool BuildTool
	Testing   TestFramework
	Assertion Assertion
}

// Equal reports whether two flag sets select the same features.
// Nil and empty slices compare equal.
func (f Flags) Equal(o Flags) bool {
	return f.Script == o.Script &&
		f.Markup == o.Markup &&
		f.Stylesheet == o.Stylesheet &&
		f.Router == o.Router &&
		f.Bootstrap == o.Bootstrap &&
		f.UIBootstrap == o.UIBootstrap &&
		slices.Equal(f.DataLayers, o.DataLayers) &&
		f.HasModels == o.HasModels &&
		f.DefaultModels == o.DefaultModels &&
		f.Auth == o.Auth &&
		slices.Equal(f.OAuth, o.OAuth) &&
		f.SocketIO == o.SocketIO &&
		f.BuildTool == o.BuildTool &&
		f.Testing == o.Testing &&
		f.Assertion == o.Assertion
}

// HasDataLayer reports whether the given data layer is enabled.
func (f Flags) HasDataLayer(d DataLayer) bool {
	return slices.Contains(f.DataLayers, d)
}

// HasOAuth reports whether the given OAuth strategy is enabled.
func (f Flags) HasOAuth(a AuthStrategy) bool {
	return slices.Contains(f.OAuth, a)
}

// ModelsBackend returns the data-modeling backend used for default models:
// the only enabled layer, or the explicit default when several are enabled.
// An empty result means no persistence. Models wanted without a resolvable
// backend is an inconsistency.
func (f Flags) ModelsBackend() (DataLayer, error) {
	switch len(f.DataLayers) {
	case 0:
		if f.HasModels || f.DefaultModels != "" {
			return "", inconsistent(FamilyModels, "models wanted but no data layer enabled")
		}
		return "", nil
	case 1:
		only := f.DataLayers[0]
		if f.DefaultModels != "" && f.DefaultModels != only {
			return "", inconsistent(FamilyModels, "default models backend is not enabled",
				string(f.DefaultModels))
		}
		return only, nil
	default:
		if f.DefaultModels == "" {
			return "", inconsistent(FamilyModels, "several data layers enabled but no default models backend")
		}
		if !f.HasDataLayer(f.DefaultModels) {
			return "", inconsistent(FamilyModels, "default models backend is not enabled",
				string(f.DefaultModels))
		}
		return f.DefaultModels, nil
	}
}

// Validate checks the cross-family invariants that the enumerated types
// alone cannot express.
func (f Flags) Validate() error {
	if f.Script != "" && !f.Script.IsValid() {
		return inconsistent(FamilyScript, "unknown member", string(f.Script))
	}
	if f.Markup != "" && !f.Markup.IsValid() {
		return inconsistent(FamilyMarkup, "unknown member", string(f.Markup))
	}
	if f.Stylesheet != "" && !f.Stylesheet.IsValid() {
		return inconsistent(FamilyStylesheet, "unknown member", string(f.Stylesheet))
	}
	if f.Router != "" && !f.Router.IsValid() {
		return inconsistent(FamilyRouter, "unknown member", string(f.Router))
	}
	if f.BuildTool != "" && !f.BuildTool.IsValid() {
		return inconsistent(FamilyBuildTool, "unknown member", string(f.BuildTool))
	}
	switch f.Testing {
	case TestMocha:
		if !f.Assertion.IsValid() {
			return inconsistent(FamilyAssertion, "mocha requires exactly one assertion style")
		}
	case TestJasmine, "":
		if f.Assertion != "" {
			return inconsistent(FamilyAssertion, "assertion style set without mocha", string(f.Assertion))
		}
	default:
		return inconsistent(FamilyTesting, "unknown member", string(f.Testing))
	}
	if _, err := f.ModelsBackend(); err != nil {
		return err
	}
	return nil
}

// Encode projects Flags onto the persisted filter map.
//
// Only chosen members are written, except for the test stack where the
// losing framework and assertion styles are written explicitly as false.
func Encode(f Flags) Filters {
	m := Filters{}

	if f.Script != "" {
		m["js"] = true
		m[string(f.Script)] = true
	}
	if f.Markup != "" {
		m[string(f.Markup)] = true
	}
	if f.Stylesheet != "" {
		m[string(f.Stylesheet)] = true
	}
	if f.Router != "" {
		m[string(f.Router)] = true
	}
	m["bootstrap"] = f.Bootstrap
	m["uibootstrap"] = f.UIBootstrap

	for _, d := range f.DataLayers {
		m[string(d)] = true
	}
	if f.HasModels {
		m["models"] = true
		if f.DefaultModels != "" {
			m[f.DefaultModels.ModelsFlag()] = true
		}
	} else if len(f.DataLayers) == 0 {
		m["noModels"] = true
	}
	if f.Auth {
		m["auth"] = true
	}
	if len(f.OAuth) > 0 {
		m["oauth"] = true
		for _, a := range f.OAuth {
			m[string(a)] = true
		}
	}
	if f.SocketIO {
		m["socketio"] = true
	}

	if f.BuildTool != "" {
		m[string(f.BuildTool)] = true
	}
	switch f.Testing {
	case TestMocha:
		m[string(TestMocha)] = true
		m[string(TestJasmine)] = false
		m[string(AssertShould)] = false
		m[string(AssertExpect)] = false
		if f.Assertion != "" {
			m[string(f.Assertion)] = true
		}
	case TestJasmine:
		m[string(TestJasmine)] = true
		m[string(TestMocha)] = false
		m[string(AssertShould)] = false
		m[string(AssertExpect)] = false
	}

	return m
}

// Decode rebuilds Flags from a persisted filter map. A map with two true
// members of a single-choice family, or a test stack that breaks the
// mocha/assertion rule, yields an *InconsistencyError.
// Unknown keys are ignored.
func Decode(m Filters) (Flags, error) {
	var f Flags
	var err error

	if f.Script, err = pickOne(m, FamilyScript, Scripts); err != nil {
		return Flags{}, err
	}
	if f.Markup, err = pickOne(m, FamilyMarkup, Markups); err != nil {
		return Flags{}, err
	}
	if f.Stylesheet, err = pickOne(m, FamilyStylesheet, Stylesheets); err != nil {
		return Flags{}, err
	}
	if f.Router, err = pickOne(m, FamilyRouter, Routers); err != nil {
		return Flags{}, err
	}
	if f.BuildTool, err = pickOne(m, FamilyBuildTool, BuildTools); err != nil {
		return Flags{}, err
	}
	if f.Testing, err = pickOne(m, FamilyTesting, TestFrameworks); err != nil {
		return Flags{}, err
	}
	if f.Assertion, err = pickOne(m, FamilyAssertion, Assertions); err != nil {
		return Flags{}, err
	}

	f.Bootstrap = m["bootstrap"]
	f.UIBootstrap = m["uibootstrap"]
	f.Auth = m["auth"]
	f.SocketIO = m["socketio"]
	f.HasModels = m["models"]

	for _, d := range DataLayers {
		if m[string(d)] {
			f.DataLayers = append(f.DataLayers, d)
		}
	}
	for _, a := range AuthStrategies {
		if m[string(a)] {
			f.OAuth = append(f.OAuth, a)
		}
	}

	var defaults []string
	for _, d := range DataLayers {
		if m[d.ModelsFlag()] {
			defaults = append(defaults, d.ModelsFlag())
			f.DefaultModels = d
		}
	}
	if len(defaults) > 1 {
		return Flags{}, inconsistent(FamilyModels, "more than one default models backend", defaults...)
	}
	if m["noModels"] && (f.HasModels || len(f.DataLayers) > 0) {
		return Flags{}, inconsistent(FamilyModels, "noModels set together with a data layer")
	}

	if err := f.Validate(); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// pickOne returns the single true member of a family, the zero value when
// none is set, or an inconsistency when several are.
func pickOne[T ~string](m Filters, family string, members []T) (T, error) {
	var found []string
	var chosen T
	for _, v := range members {
		if m[string(v)] {
			found = append(found, string(v))
			chosen = v
		}
	}
	if len(found) > 1 {
		var zero T
		return zero, inconsistent(family, "more than one member selected", found...)
	}
	return chosen, nil
}
