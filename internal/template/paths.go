package template

import (
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/modu-ai/ngfs/internal/compose"
)

// markerPattern matches a filter marker in a path segment: "(auth)" or
// "(googleAuth|facebookAuth)".
var markerPattern = regexp.MustCompile(`\(([A-Za-z0-9]+(?:\|[A-Za-z0-9]+)*)\)`)

// ViewDirs are the client source trees whose markup and stylesheet files
// exist in one variant per extension.
var ViewDirs = []string{"client/app/", "client/components/"}

var (
	markupExts = []string{"html", "jade"}
	styleExts  = []string{"css", "scss", "styl", "less"}
)

// segmentIncluded strips the markers of one path segment. It reports false
// when any marker has no active alternative.
func segmentIncluded(seg string, active map[string]bool) (string, bool) {
	keep := true
	stripped := markerPattern.ReplaceAllStringFunc(seg, func(m string) string {
		alts := strings.Split(m[1:len(m)-1], "|")
		if !slices.ContainsFunc(alts, func(a string) bool { return active[a] }) {
			keep = false
		}
		return ""
	})
	return stripped, keep
}

// Destination maps a template path to its project-relative destination.
// The second result is false when the active flags exclude the file.
//
// Markers are evaluated per segment and removed; a segment that is only a
// marker disappears. A trailing ".tmpl" is dropped. Under ViewDirs a markup
// or stylesheet file is kept only when its extension is enabled. With
// RewriteScripts, client ".js" files become ".ts".
func Destination(p string, req compose.TemplateRequest) (string, bool) {
	active := activeSet(req.Markers)

	segs := strings.Split(p, "/")
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		s, ok := segmentIncluded(seg, active)
		if !ok {
			return "", false
		}
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return "", false
	}

	dest := strings.TrimSuffix(strings.Join(out, "/"), ".tmpl")
	ext := strings.TrimPrefix(path.Ext(dest), ".")
	if inViewDir(dest) && (slices.Contains(markupExts, ext) || slices.Contains(styleExts, ext)) {
		if !slices.Contains(req.Extensions, ext) {
			return "", false
		}
	}

	if req.RewriteScripts && strings.HasPrefix(dest, "client/") && strings.HasSuffix(dest, ".js") {
		dest = strings.TrimSuffix(dest, ".js") + ".ts"
	}
	return dest, true
}

// dirIncluded reports whether a template directory can contain included files.
func dirIncluded(p string, active map[string]bool) bool {
	for _, seg := range strings.Split(p, "/") {
		if _, ok := segmentIncluded(seg, active); !ok {
			return false
		}
	}
	return true
}

func inViewDir(p string) bool {
	return slices.ContainsFunc(ViewDirs, func(d string) bool { return strings.HasPrefix(p, d) })
}

func activeSet(markers []string) map[string]bool {
	m := make(map[string]bool, len(markers))
	for _, name := range markers {
		m[name] = true
	}
	return m
}
