package flags

// Script is the scripting family.
type Script string

const (
	ScriptBabel      Script = "babel"
	ScriptTypeScript Script = "ts"
)

// Markup is the markup family.
type Markup string

const (
	MarkupHTML Markup = "html"
	MarkupJade Markup = "jade"
)

// Stylesheet is the stylesheet family.
type Stylesheet string

const (
	StyleCSS    Stylesheet = "css"
	StyleSass   Stylesheet = "sass"
	StyleStylus Stylesheet = "stylus"
	StyleLess   Stylesheet = "less"
)

// Router is the client routing family.
type Router string

const (
	RouterNgRoute  Router = "ngroute"
	RouterUIRouter Router = "uirouter"
)

// DataLayer is a server data-modeling backend. Several may be enabled.
type DataLayer string

const (
	DataMongoose  DataLayer = "mongoose"
	DataSequelize DataLayer = "sequelize"
)

// ModelsFlag returns the filter name marking this layer as the default models backend.
func (d DataLayer) ModelsFlag() string {
	return string(d) + "Models"
}

// AuthStrategy is an additional OAuth strategy. Several may be enabled.
type AuthStrategy string

const (
	AuthGoogle   AuthStrategy = "googleAuth"
	AuthFacebook AuthStrategy = "facebookAuth"
	AuthTwitter  AuthStrategy = "twitterAuth"
)

// BuildTool is the build tool family.
type BuildTool string

const (
	BuildGrunt BuildTool = "grunt"
	BuildGulp  BuildTool = "gulp"
)

// TestFramework is the test framework family.
type TestFramework string

const (
	TestJasmine TestFramework = "jasmine"
	TestMocha   TestFramework = "mocha"
)

// Assertion is the Chai assertion style, only meaningful with Mocha.
type Assertion string

const (
	AssertExpect Assertion = "expect"
	AssertShould Assertion = "should"
)

// Family names used in error reports.
const (
	FamilyScript     = "scripting"
	FamilyMarkup     = "markup"
	FamilyStylesheet = "stylesheet"
	FamilyRouter     = "routing"
	FamilyModels     = "models"
	FamilyBuildTool  = "build tool"
	FamilyTesting    = "test framework"
	FamilyAssertion  = "assertion"
)

// Members of each family, in question order.
var (
	Scripts        = []Script{ScriptBabel, ScriptTypeScript}
	Markups        = []Markup{MarkupHTML, MarkupJade}
	Stylesheets    = []Stylesheet{StyleCSS, StyleSass, StyleStylus, StyleLess}
	Routers        = []Router{RouterNgRoute, RouterUIRouter}
	DataLayers     = []DataLayer{DataMongoose, DataSequelize}
	AuthStrategies = []AuthStrategy{AuthGoogle, AuthFacebook, AuthTwitter}
	BuildTools     = []BuildTool{BuildGrunt, BuildGulp}
	TestFrameworks = []TestFramework{TestJasmine, TestMocha}
	Assertions     = []Assertion{AssertExpect, AssertShould}
)

// IsValid reports whether s is a member of the scripting family.
func (s Script) IsValid() bool {
	switch s {
	case ScriptBabel, ScriptTypeScript:
		return true
	}
	return false
}

// IsValid reports whether m is a member of the markup family.
func (m Markup) IsValid() bool {
	switch m {
	case MarkupHTML, MarkupJade:
		return true
	}
	return false
}

// IsValid reports whether s is a member of the stylesheet family.
func (s Stylesheet) IsValid() bool {
	switch s {
	case StyleCSS, StyleSass, StyleStylus, StyleLess:
		return true
	}
	return false
}

// Ext returns the file-extension token for the stylesheet. The mapping is a
// fixed token substitution: sass→scss, stylus→styl, less→less, css→css.
// The empty stylesheet maps to css.
func (s Stylesheet) Ext() string {
	switch s {
	case StyleSass:
		return "scss"
	case StyleStylus:
		return "styl"
	case StyleLess:
		return "less"
	default:
		return "css"
	}
}

// IsValid reports whether r is a member of the routing family.
func (r Router) IsValid() bool {
	switch r {
	case RouterNgRoute, RouterUIRouter:
		return true
	}
	return false
}

// IsValid reports whether d is a known data layer.
func (d DataLayer) IsValid() bool {
	switch d {
	case DataMongoose, DataSequelize:
		return true
	}
	return false
}

// IsValid reports whether a is a known OAuth strategy.
func (a AuthStrategy) IsValid() bool {
	switch a {
	case AuthGoogle, AuthFacebook, AuthTwitter:
		return true
	}
	return false
}

// IsValid reports whether b is a member of the build tool family.
func (b BuildTool) IsValid() bool {
	switch b {
	case BuildGrunt, BuildGulp:
		return true
	}
	return false
}

// IsValid reports whether t is a member of the test framework family.
func (t TestFramework) IsValid() bool {
	switch t {
	case TestJasmine, TestMocha:
		return true
	}
	return false
}

// IsValid reports whether a is a member of the assertion family.
func (a Assertion) IsValid() bool {
	switch a {
	case AssertExpect, AssertShould:
		return true
	}
	return false
}

// Vocabulary lists every filter name that Encode can write.
var Vocabulary = []string{
	"js", "babel", "ts",
	"html", "jade",
	"css", "sass", "stylus", "less",
	"ngroute", "uirouter",
	"bootstrap", "uibootstrap",
	"mongoose", "sequelize", "models", "mongooseModels", "sequelizeModels", "noModels",
	"auth", "oauth", "googleAuth", "facebookAuth", "twitterAuth",
	"socketio",
	"grunt", "gulp",
	"jasmine", "mocha", "expect", "should",
}
