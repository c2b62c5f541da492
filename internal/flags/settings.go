package flags

// Base extensions used when no specialised family member is chosen.
const (
	BaseScriptExt   = "js"
	BaseTemplateExt = "html"
	BaseStyleExt    = "css"
)

// Settings are the scalar project settings derived from Flags.
// They must be recomputed whenever Flags change.
type Settings struct {
	ScriptExt   string // "js" or "ts"
	TemplateExt string // "html" or "jade"
	StyleExt    string // "css", "scss", "styl" or "less"
}

// Derive computes Settings from Flags.
func Derive(f Flags) Settings {
	s := Settings{
		ScriptExt:   BaseScriptExt,
		TemplateExt: BaseTemplateExt,
		StyleExt:    BaseStyleExt,
	}
	if f.Script == ScriptTypeScript {
		s.ScriptExt = "ts"
	}
	if f.Markup == MarkupJade {
		s.TemplateExt = "jade"
	}
	if f.Stylesheet != "" {
		s.StyleExt = f.Stylesheet.Ext()
	}
	return s
}
