package main

import (
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/engines"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Engines engines.Module
	Sources sources.Module
	Debugs  debugs.Module
}
