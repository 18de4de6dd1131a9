package bfconfigs

import (
	"cmp"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

type ProgramsDir string

var programsDirFlag = cmds.Var[string]("-programs-dir", "directory of .bf files searched before the built-in programs")

func (Module) ProgramsDir(
	loader configs.Loader,
) ProgramsDir {
	return cmp.Or(
		ProgramsDir(*programsDirFlag),
		configs.First[ProgramsDir](loader, "programs_dir"),
	)
}
