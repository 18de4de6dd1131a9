package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

var ErrValueNotFound = errors.New("value not found")

// Loader reads cue files once, on first use. Earlier files take precedence.
type Loader struct {
	files func() ([]file, error)
}

type file struct {
	path  string
	value cue.Value
}

// NewLoader validates every file against schemaSrc, a list of cue field declarations, if not empty.
// Fields not declared in the schema are errors.
func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		files: sync.OnceValues(func() ([]file, error) {
			ctx := cuecontext.New()
			schema, err := compileSchema(ctx, schemaSrc)
			if err != nil {
				return nil, err
			}
			files := make([]file, 0, len(paths))
			for _, path := range paths {
				value, err := loadFile(ctx, schema, path)
				if err != nil {
					return nil, fmt.Errorf("config %s: %w", path, err)
				}
				files = append(files, file{
					path:  path,
					value: value,
				})
			}
			return files, nil
		}),
	}
}

func compileSchema(ctx *cue.Context, src string) (cue.Value, error) {
	if src == "" {
		return cue.Value{}, nil
	}
	schema := ctx.CompileString("close({" + src + "})")
	if err := schema.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("config schema: %w", err)
	}
	return schema, nil
}

func loadFile(ctx *cue.Context, schema cue.Value, path string) (cue.Value, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, err
	}
	value := ctx.CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return cue.Value{}, err
	}
	if schema.Exists() {
		if err := schema.Unify(value).Validate(); err != nil {
			return cue.Value{}, err
		}
	}
	return value, nil
}

// Paths returns the files in precedence order.
func (l Loader) Paths() ([]string, error) {
	files, err := l.files()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(files))
	for _, f := range files {
		ret = append(ret, f.path)
	}
	return ret, nil
}

// Values yields the value at path from each file that sets it.
func (l Loader) Values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		files, err := l.files()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Decode decodes the first value at path into target.
func (l Loader) Decode(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}

// First returns the first value at path, or the zero value if no file sets it.
// Invalid files panic, since nothing sensible can run with a broken config.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.Decode(path, &value); err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return value
}

func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.Values(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}
