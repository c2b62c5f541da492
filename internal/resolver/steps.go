package resolver

import (
	"slices"

	"github.com/modu-ai/ngfs/internal/flags"
)

// ApplyClient folds client answers into f. Every client field is overwritten,
// so nothing from a previous resolution survives.
func ApplyClient(f flags.Flags, a ClientAnswers) flags.Flags {
	f.Script = a.Transpiler
	f.Markup = a.Markup
	f.Stylesheet = a.Stylesheet
	f.Router = a.Router
	f.Bootstrap = a.Bootstrap
	f.UIBootstrap = a.Bootstrap && a.UIBootstrap
	return f
}

// ApplyServer folds server answers into f.
//
// The server fields are cleared first. Auth, OAuth and socket.io only apply
// when at least one data layer is selected, mirroring the question gates.
// With a single data layer it becomes the default models backend; with
// several the explicit models answer wins, falling back to the first layer.
func ApplyServer(f flags.Flags, a ServerAnswers) flags.Flags {
	f.DataLayers = nil
	f.HasModels = false
	f.DefaultModels = ""
	f.Auth = false
	f.OAuth = nil
	f.SocketIO = false

	layers := canonical(flags.DataLayers, a.ODMs)
	if len(layers) == 0 {
		return f
	}

	f.DataLayers = layers
	f.HasModels = true
	f.DefaultModels = layers[0]
	if len(layers) > 1 && a.Models != "" {
		f.DefaultModels = a.Models
	}

	f.Auth = a.Auth
	if f.Auth {
		f.OAuth = canonical(flags.AuthStrategies, a.OAuth)
	}
	f.SocketIO = a.SocketIO
	return f
}

// ApplyProject folds project answers into f. Choosing jasmine clears any
// assertion style; choosing mocha keeps exactly the selected one.
func ApplyProject(f flags.Flags, a ProjectAnswers) flags.Flags {
	f.BuildTool = a.BuildTool
	f.Testing = a.Testing
	f.Assertion = ""
	if a.Testing == flags.TestMocha {
		f.Assertion = a.Chai
	}
	return f
}

// canonical returns the selected members in family order, without duplicates.
func canonical[T comparable](order, selected []T) []T {
	var out []T
	for _, v := range order {
		if slices.Contains(selected, v) {
			out = append(out, v)
		}
	}
	return out
}
