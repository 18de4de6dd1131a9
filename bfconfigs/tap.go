package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type Tap bool

var tapFlag = cmds.Switch("-tap", "open a starlark repl over the final tape, runs on the vm engine")

func (Module) Tap(
	loader configs.Loader,
) Tap {
	if *tapFlag {
		return true
	}
	return configs.First[Tap](loader, "tap")
}
