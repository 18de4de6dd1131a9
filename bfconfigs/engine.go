package bfconfigs

import (
	"cmp"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// EngineName names the engine that runs programs. Empty means the default.
type EngineName string

var engineFlag = cmds.Var[string]("-engine", "engine to run programs: interp, tree, vm or native")

func (Module) EngineName(
	loader configs.Loader,
) EngineName {
	return cmp.Or(
		EngineName(*engineFlag),
		configs.First[EngineName](loader, "engine"),
	)
}
