package engines

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/interps"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/ops"
	"github.com/reusee/bf/programs"
	"github.com/reusee/dscope"
)

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(defs...)
}

func runString(engine Engine, src string, input string) (string, error) {
	buf := new(bytes.Buffer)
	err := engine.Run(context.Background(), src, strings.NewReader(input), buf)
	return buf.String(), err
}

func TestEnginesMatchInterpreter(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	for i := range 200 {
		src := programs.Random(rnd, 3)
		input := fmt.Sprint(rnd.Uint32())
		want, err := interps.InterpretString(src, input)
		if err != nil {
			t.Fatal(err)
		}
		for _, engine := range []Engine{Tree, VM} {
			got, err := runString(engine, src, input)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%d %s: %q: got %q, want %q", i, engine.Name(), src, got, want)
			}
		}
	}
}

func TestBuiltins(t *testing.T) {
	for _, name := range programs.Names() {
		src := programs.MustGet(name)
		input := "How I Start\n"
		want, err := interps.InterpretString(src, input)
		if err != nil {
			t.Fatal(err)
		}
		for _, engine := range []Engine{Interp, Tree, VM, Native} {
			got, err := runString(engine, src, input)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%s %s: got %q, want %q", name, engine.Name(), got, want)
			}
		}
	}
}

func TestNativeUnknownProgram(t *testing.T) {
	_, err := runString(Native, "+++.", "")
	if !errors.Is(err, ErrNoNative) {
		t.Fatalf("got %v", err)
	}
}

func TestMalformed(t *testing.T) {
	for _, engine := range []Engine{Interp, Tree, VM, Native} {
		_, err := runString(engine, "+[[-]", "")
		var malformed *ops.MalformedError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: got %v", engine.Name(), err)
		}
		if !errors.Is(err, ops.ErrUnmatchedOpen) {
			t.Fatalf("%s: got %v", engine.Name(), err)
		}
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, engine := range []Engine{Interp, Tree, VM, Native} {
		err := engine.Run(ctx, "+.", nil, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("%s: got %v", engine.Name(), err)
		}
	}
}

func TestVMDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*50)
	defer cancel()
	err := VM.Run(ctx, "+[]", nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestGetEngine(t *testing.T) {
	newScope(t).Call(func(
		engines Engines,
		getEngine GetEngine,
	) {
		if got := strings.Join(engines.Names(), " "); got != "interp native tree vm" {
			t.Fatalf("got %s", got)
		}
		engine, err := getEngine()
		if err != nil {
			t.Fatal(err)
		}
		if engine.Name() != DefaultName {
			t.Fatalf("got %s", engine.Name())
		}
		if _, err := engines.Get("jit"); !errors.Is(err, ErrUnknownEngine) {
			t.Fatalf("got %v", err)
		}
	})

	newScope(t,
		dscope.Provide(bfconfigs.EngineName("vm")),
	).Call(func(
		getEngine GetEngine,
	) {
		engine, err := getEngine()
		if err != nil {
			t.Fatal(err)
		}
		if engine.Name() != "vm" {
			t.Fatalf("got %s", engine.Name())
		}
		out, err := runString(engine, programs.MustGet("hello"), "")
		if err != nil {
			t.Fatal(err)
		}
		if out != "Hello World!\n" {
			t.Fatalf("got %q", out)
		}
	})
}

func TestRunErrorLogged(t *testing.T) {
	buf := new(bytes.Buffer)
	newScope(t,
		func() logs.Writer {
			return buf
		},
	).Call(func(
		engines Engines,
	) {
		engine, err := engines.Get("tree")
		if err != nil {
			t.Fatal(err)
		}
		_, err = runString(engine, "+]", "")
		if !errors.Is(err, ops.ErrUnmatchedClose) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "(span ") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(buf.String(), "engine=tree") {
			t.Fatalf("got %q", buf.String())
		}
	})
}
