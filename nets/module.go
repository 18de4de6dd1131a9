package nets

import (
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

// Module provides a proxy-aware http client for fetching programs.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
