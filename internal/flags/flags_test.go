package flags

import (
	"errors"
	"slices"
	"testing"
)

func fullFlags() Flags {
	return Flags{
		Script:        ScriptTypeScript,
		Markup:        MarkupHTML,
		Stylesheet:    StyleSass,
		Router:        RouterUIRouter,
		Bootstrap:     true,
		UIBootstrap:   true,
		DataLayers:    []DataLayer{DataMongoose, DataSequelize},
		HasModels:     true,
		DefaultModels: DataSequelize,
		Auth:          true,
		OAuth:         []AuthStrategy{AuthGoogle, AuthTwitter},
		SocketIO:      true,
		BuildTool:     BuildGulp,
		Testing:       TestMocha,
		Assertion:     AssertShould,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
	}{
		{"full", fullFlags()},
		{"no_models", Flags{
			Script: ScriptBabel, Markup: MarkupJade, Stylesheet: StyleCSS,
			Router: RouterNgRoute, BuildTool: BuildGrunt, Testing: TestJasmine,
		}},
		{"single_layer", Flags{
			Script: ScriptBabel, Markup: MarkupHTML, Stylesheet: StyleLess,
			Router: RouterNgRoute, DataLayers: []DataLayer{DataMongoose},
			HasModels: true, DefaultModels: DataMongoose,
			BuildTool: BuildGrunt, Testing: TestMocha, Assertion: AssertExpect,
		}},
		{"empty", Flags{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(Encode(tt.flags))
			if err != nil {
				t.Fatalf("Decode(Encode()) error = %v", err)
			}
			if !got.Equal(tt.flags) {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, tt.flags)
			}
			if Derive(got) != Derive(tt.flags) {
				t.Errorf("derived settings differ: %+v vs %+v", Derive(got), Derive(tt.flags))
			}
		})
	}
}

func TestEncodeTestStackClearsLosers(t *testing.T) {
	f := Flags{Testing: TestMocha, Assertion: AssertExpect}
	m := Encode(f)
	if !m["mocha"] || m["jasmine"] || m["should"] || !m["expect"] {
		t.Errorf("mocha encoding wrong: %v", m)
	}
	if _, ok := m["jasmine"]; !ok {
		t.Error("jasmine should be written explicitly as false")
	}

	m = Encode(Flags{Testing: TestJasmine})
	for _, k := range []string{"mocha", "should", "expect"} {
		v, ok := m[k]
		if !ok || v {
			t.Errorf("jasmine encoding: %s = %v (present %v), want explicit false", k, v, ok)
		}
	}
}

func TestEncodeModels(t *testing.T) {
	m := Encode(Flags{})
	if !m["noModels"] {
		t.Error("expected noModels for a flag set without data layers")
	}
	if m["models"] {
		t.Error("models must not be set without data layers")
	}

	m = Encode(fullFlags())
	if !m["models"] || !m["sequelizeModels"] || m["mongooseModels"] {
		t.Errorf("models encoding wrong: %v", m)
	}
	if !m["oauth"] || !m["googleAuth"] || m["facebookAuth"] {
		t.Errorf("oauth encoding wrong: %v", m)
	}
	if !m["js"] || !m["ts"] {
		t.Errorf("scripting encoding wrong: %v", m)
	}
}

func TestDecodeRejectsInconsistentMaps(t *testing.T) {
	tests := []struct {
		name   string
		input  Filters
		family string
	}{
		{"two_scripts", Filters{"babel": true, "ts": true}, FamilyScript},
		{"two_markups", Filters{"html": true, "jade": true}, FamilyMarkup},
		{"two_styles", Filters{"sass": true, "less": true}, FamilyStylesheet},
		{"two_routers", Filters{"ngroute": true, "uirouter": true}, FamilyRouter},
		{"two_build_tools", Filters{"grunt": true, "gulp": true}, FamilyBuildTool},
		{"two_frameworks", Filters{"jasmine": true, "mocha": true}, FamilyTesting},
		{"two_assertions", Filters{"mocha": true, "expect": true, "should": true}, FamilyAssertion},
		{"mocha_without_assertion", Filters{"mocha": true}, FamilyAssertion},
		{"jasmine_with_assertion", Filters{"jasmine": true, "should": true}, FamilyAssertion},
		{"two_default_models", Filters{
			"mongoose": true, "sequelize": true, "models": true,
			"mongooseModels": true, "sequelizeModels": true,
		}, FamilyModels},
		{"models_without_layer", Filters{"models": true}, FamilyModels},
		{"no_models_with_layer", Filters{"noModels": true, "mongoose": true}, FamilyModels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if err == nil {
				t.Fatal("expected an inconsistency error")
			}
			if !errors.Is(err, ErrInconsistent) {
				t.Errorf("error %v should wrap ErrInconsistent", err)
			}
			var ie *InconsistencyError
			if !errors.As(err, &ie) {
				t.Fatalf("error %T should be *InconsistencyError", err)
			}
			if ie.Family != tt.family {
				t.Errorf("Family = %q, want %q", ie.Family, tt.family)
			}
		})
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	f, err := Decode(Filters{"babel": true, "es6": true, "js": true})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Script != ScriptBabel {
		t.Errorf("Script = %q, want babel", f.Script)
	}
}

func TestStylesheetExtIsTotal(t *testing.T) {
	want := map[Stylesheet]string{
		StyleSass:   "scss",
		StyleStylus: "styl",
		StyleLess:   "less",
		StyleCSS:    "css",
	}
	seen := map[string]bool{}
	for _, s := range Stylesheets {
		ext := s.Ext()
		if ext != want[s] {
			t.Errorf("%s.Ext() = %q, want %q", s, ext, want[s])
		}
		if seen[ext] {
			t.Errorf("extension %q is produced twice", ext)
		}
		seen[ext] = true
	}
	if got := Stylesheet("").Ext(); got != "css" {
		t.Errorf("empty stylesheet Ext() = %q, want css", got)
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  Settings
	}{
		{"defaults", Flags{}, Settings{"js", "html", "css"}},
		{"typescript_sass", Flags{Script: ScriptTypeScript, Markup: MarkupHTML, Stylesheet: StyleSass}, Settings{"ts", "html", "scss"}},
		{"babel_jade_stylus", Flags{Script: ScriptBabel, Markup: MarkupJade, Stylesheet: StyleStylus}, Settings{"js", "jade", "styl"}},
		{"less", Flags{Stylesheet: StyleLess}, Settings{"js", "html", "less"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.flags); got != tt.want {
				t.Errorf("Derive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModelsBackend(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		want    DataLayer
		wantErr bool
	}{
		{"none", Flags{}, "", false},
		{"single", Flags{DataLayers: []DataLayer{DataMongoose}, HasModels: true}, DataMongoose, false},
		{"several_with_default", Flags{DataLayers: DataLayers, HasModels: true, DefaultModels: DataSequelize}, DataSequelize, false},
		{"several_without_default", Flags{DataLayers: DataLayers, HasModels: true}, "", true},
		{"wanted_without_layer", Flags{HasModels: true}, "", true},
		{"default_not_enabled", Flags{DataLayers: []DataLayer{DataMongoose}, DefaultModels: DataSequelize}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.ModelsBackend()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ModelsBackend() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ModelsBackend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFiltersActive(t *testing.T) {
	m := Filters{"uirouter": true, "auth": true, "jasmine": false}
	if got, want := m.Active(), []string{"auth", "uirouter"}; !slices.Equal(got, want) {
		t.Errorf("Active() = %v, want %v", got, want)
	}
}

func TestEncodeStaysWithinVocabulary(t *testing.T) {
	t.Parallel()

	full := Flags{
		Script: ScriptTypeScript, Markup: MarkupJade, Stylesheet: StyleStylus, Router: RouterNgRoute,
		Bootstrap: true, UIBootstrap: true,
		DataLayers: DataLayers, HasModels: true, DefaultModels: DataSequelize,
		Auth: true, OAuth: AuthStrategies, SocketIO: true,
		BuildTool: BuildGulp, Testing: TestMocha, Assertion: AssertShould,
	}
	for _, f := range []Flags{full, {}} {
		for name := range Encode(f) {
			if !slices.Contains(Vocabulary, name) {
				t.Errorf("Encode wrote %q outside Vocabulary", name)
			}
		}
	}
}
