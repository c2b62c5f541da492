// Package flags defines the feature-flag vocabulary of a generated project.
//
// Every user choice belongs to a family. Single-choice families (scripting,
// markup, stylesheet, routing, build tool, test framework, assertion style)
// are modelled as enumerated string types, so a [Flags] value can never hold
// two primaries of the same family. Multi-choice families (data layers and
// OAuth strategies) are ordered slices.
//
// Two representations exist:
//
//   - [Flags] is the typed form threaded through resolution and planning.
//   - [Filters] is the flat name-to-boolean projection persisted in the
//     project configuration and used as template markers.
//
// [Encode] and [Decode] convert between them. Decode is the only place where
// an untrusted map enters the system, so it rejects maps that violate a
// family invariant with an [InconsistencyError].
//
// Derived settings (file extensions) are pure functions of Flags:
//
//	settings := flags.Derive(f)
//	fmt.Println(settings.StyleExt) // "scss" for Sass
package flags
