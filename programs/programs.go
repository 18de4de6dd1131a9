package programs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.bf
var builtinFS embed.FS

const ext = ".bf"

var ErrNotFound = errors.New("program not found")

// Store looks up named programs in a list of file systems, first match wins.
type Store struct {
	fsys []fs.FS
}

func Builtin() Store {
	return New(builtinFS)
}

// New returns a store searching fsys in order.
func New(fsys ...fs.FS) Store {
	return Store{
		fsys: fsys,
	}
}

// With returns a store that searches fsys before s.
func (s Store) With(fsys fs.FS) Store {
	return Store{
		fsys: append([]fs.FS{fsys}, s.fsys...),
	}
}

func (s Store) Get(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	for _, fsys := range s.fsys {
		content, err := fs.ReadFile(fsys, name+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read program %s: %w", name, err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (s Store) Names() ([]string, error) {
	var names []string
	for _, fsys := range s.fsys {
		matches, err := fs.Glob(fsys, "*"+ext)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			names = append(names, strings.TrimSuffix(path.Base(match), ext))
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func Get(name string) (string, error) {
	return Builtin().Get(name)
}

func MustGet(name string) string {
	src, err := Get(name)
	if err != nil {
		panic(err)
	}
	return src
}

func Names() []string {
	names, err := Builtin().Names()
	if err != nil {
		panic(err)
	}
	return names
}
