package engines

import (
	"cmp"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
)

const DefaultName = "interp"

func (Module) Engines(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Engines {
	var ret Engines
	for _, engine := range []Engine{Interp, Tree, VM, Native} {
		ret = append(ret, loggedEngine{
			Engine:  engine,
			logger:  logger,
			newSpan: newSpan,
		})
	}
	return sortEngines(ret)
}

// GetEngine returns the engine named by flag or config, or the interpreter.
type GetEngine func() (Engine, error)

func (Module) GetEngine(
	engines Engines,
	name bfconfigs.EngineName,
) GetEngine {
	return func() (Engine, error) {
		return engines.Get(cmp.Or(string(name), DefaultName))
	}
}
