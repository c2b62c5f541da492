package project

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/huandu/xstrings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9-]+`)

// Names are the derived names of a generated app.
type Names struct {
	App     string // camelized, e.g. "myShop"
	Display string // title-cased words, e.g. "My Shop"
	Script  string // App plus suffix, the Angular module prefix, e.g. "myShopApp"
}

// AppNames derives the app names from name, or from the base name of root
// when name is empty.
func AppNames(name, root, suffix string) Names {
	if name == "" {
		name = filepath.Base(filepath.Clean(root))
	}

	slug := nonSlug.ReplaceAllString(xstrings.ToKebabCase(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "app"
	}

	app := xstrings.ToCamelCase(slug)
	display := cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	return Names{App: app, Display: display, Script: app + suffix}
}
