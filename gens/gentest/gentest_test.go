package gentest

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/reusee/bf/gens"
	"github.com/reusee/bf/interps"
)

var inputs = []string{
	"",
	"abc",
	"\x00\xff",
}

func TestGeneratedUpToDate(t *testing.T) {
	store := Cases()
	names, err := store.Names()
	if err != nil {
		t.Fatal(err)
	}
	var progs []gens.Program
	for _, name := range names {
		src, err := store.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		progs = append(progs, gens.Program{
			Name:   name,
			Source: src,
		})
	}
	want, err := gens.Render(gens.Options{
		Package:  "gentest",
		Register: true,
	}, progs...)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile("gentest_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("gentest_gen.go is stale, run go generate")
	}
	if strings.Join(Names(), " ") != strings.Join(names, " ") {
		t.Fatalf("got %v, want %v", Names(), names)
	}
}

func TestMatchInterpreter(t *testing.T) {
	store := Cases()
	for _, name := range Names() {
		src, err := store.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		fn, _ := Lookup(name)
		for _, input := range inputs {
			want, err := interps.InterpretString(src, input)
			if err != nil {
				t.Fatal(err)
			}
			got := new(bytes.Buffer)
			if err := fn(strings.NewReader(input), got); err != nil {
				t.Fatal(err)
			}
			if got.String() != want {
				t.Fatalf("%s with %q: got %q, want %q", name, input, got.String(), want)
			}
		}
	}
}

func TestHaltEndsProgram(t *testing.T) {
	for name, want := range map[string]string{
		"halt-first":        "",
		"halt-after-output": "\x01",
		"halt-nested":       "",
		"halt-in-scan":      "\x01",
		"halt-counted":      "\x03",
	} {
		fn, ok := Lookup(name)
		if !ok {
			t.Fatalf("%s not generated", name)
		}
		for _, input := range inputs {
			got := new(bytes.Buffer)
			if err := fn(strings.NewReader(input), got); err != nil {
				t.Fatal(err)
			}
			if got.String() != want {
				t.Fatalf("%s: got %q, want %q", name, got.String(), want)
			}
		}
	}
}
