package natives

import (
	"io"
	"slices"
	"sync"

	"github.com/reusee/bf/ops"
)

//go:generate go run ../cmd/bfgen -dir ../programs -pkg natives -register -out natives_gen.go

// Func runs a compiled-in program against the given streams.
type Func func(in io.Reader, out io.Writer) error

type Program struct {
	Name string
	// Source is the instruction-only form of the program text
	Source string
	Func   Func
}

var (
	registryLock sync.RWMutex
	byName       = make(map[string]Program)
	bySource     = make(map[string]Program)
)

func register(name string, fn Func, source string) {
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, ok := byName[name]; ok {
		panic("duplicated native program " + name)
	}
	prog := Program{
		Name:   name,
		Source: source,
		Func:   fn,
	}
	byName[name] = prog
	bySource[source] = prog
}

func Lookup(name string) (Program, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	prog, ok := byName[name]
	return prog, ok
}

// BySource finds the native program whose instructions match src, ignoring non-instruction characters.
func BySource(src string) (Program, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	prog, ok := bySource[ops.Strip(src)]
	return prog, ok
}

func Names() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
