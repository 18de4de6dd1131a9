package configs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var testSchema = `
engine?: "interp" | "tree" | "vm" | "native"
tap?: bool
programs_dir?: string
`

func TestLoaderDecode(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var engine string
	if err := loader.Decode("engine", &engine); err != nil {
		t.Fatal(err)
	}
	if engine != "vm" {
		t.Fatalf("got %q", engine)
	}

	var dir string
	if err := loader.Decode("programs_dir", &dir); err != nil {
		t.Fatal(err)
	}
	if dir != "/usr/share/bf" {
		t.Fatalf("got %q", dir)
	}

	err := loader.Decode("not", &dir)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	if !First[bool](loader, "tap") {
		t.Fatal()
	}
	if First[string](loader, "programs_dir") != "" {
		t.Fatal()
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)
	var engines []string
	for engine := range All[string](loader, "engine") {
		engines = append(engines, engine)
	}
	if str := fmt.Sprintf("%v", engines); str != "[vm tree]" {
		t.Fatalf("got %s", str)
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, "")
	if First[string](loader, "engine") != "" {
		t.Fatal()
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.Decode("engine", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestBadEngine(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
	}, `engine?: "interp"`+"\ntap?: bool")
	var str string
	if err := loader.Decode("engine", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestErrorNamesFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	_, err := loader.Paths()
	if err == nil || !strings.Contains(err.Error(), "config testdata/bad.cue") {
		t.Fatalf("got %v", err)
	}
}
