package config

import (
	"github.com/modu-ai/ngfs/internal/store"
)

// Store keys of the persisted generation parameters.
const (
	KeyGeneratorVersion    = "generatorVersion"
	KeyEndpointDirectory   = "endpointDirectory"
	KeyInsertRoutes        = "insertRoutes"
	KeyRegisterRoutesFile  = "registerRoutesFile"
	KeyRoutesNeedle        = "routesNeedle"
	KeyRoutesBase          = "routesBase"
	KeyPluralizeRoutes     = "pluralizeRoutes"
	KeyInsertSockets       = "insertSockets"
	KeyRegisterSocketsFile = "registerSocketsFile"
	KeySocketsNeedle       = "socketsNeedle"
	KeyInsertModels        = "insertModels"
	KeyRegisterModelsFile  = "registerModelsFile"
	KeyModelsNeedle        = "modelsNeedle"
)

// Apply records the generation parameters in s. Nothing is flushed.
func (g Generation) Apply(s store.Store) {
	s.Set(KeyEndpointDirectory, g.EndpointDirectory)

	s.Set(KeyInsertRoutes, g.InsertRoutes)
	s.Set(KeyRegisterRoutesFile, g.RegisterRoutesFile)
	s.Set(KeyRoutesNeedle, g.RoutesNeedle)
	s.Set(KeyRoutesBase, g.RoutesBase)
	s.Set(KeyPluralizeRoutes, g.PluralizeRoutes)

	s.Set(KeyInsertSockets, g.InsertSockets)
	s.Set(KeyRegisterSocketsFile, g.RegisterSocketsFile)
	s.Set(KeySocketsNeedle, g.SocketsNeedle)

	s.Set(KeyInsertModels, g.InsertModels)
	s.Set(KeyRegisterModelsFile, g.RegisterModelsFile)
	s.Set(KeyModelsNeedle, g.ModelsNeedle)
}

// LoadGeneration reads generation parameters from r. Absent keys take their
// default value, so a configuration written by an older generator still works.
func LoadGeneration(r store.Reader) Generation {
	d := NewDefaultGeneration()
	return Generation{
		EndpointDirectory: store.String(r, KeyEndpointDirectory, d.EndpointDirectory),

		InsertRoutes:       store.Bool(r, KeyInsertRoutes, d.InsertRoutes),
		RegisterRoutesFile: store.String(r, KeyRegisterRoutesFile, d.RegisterRoutesFile),
		RoutesNeedle:       store.String(r, KeyRoutesNeedle, d.RoutesNeedle),
		RoutesBase:         store.String(r, KeyRoutesBase, d.RoutesBase),
		PluralizeRoutes:    store.Bool(r, KeyPluralizeRoutes, d.PluralizeRoutes),

		InsertSockets:       store.Bool(r, KeyInsertSockets, d.InsertSockets),
		RegisterSocketsFile: store.String(r, KeyRegisterSocketsFile, d.RegisterSocketsFile),
		SocketsNeedle:       store.String(r, KeySocketsNeedle, d.SocketsNeedle),

		InsertModels:       store.Bool(r, KeyInsertModels, d.InsertModels),
		RegisterModelsFile: store.String(r, KeyRegisterModelsFile, d.RegisterModelsFile),
		ModelsNeedle:       store.String(r, KeyModelsNeedle, d.ModelsNeedle),
	}
}
