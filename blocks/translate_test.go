package blocks

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/reusee/bf/interps"
	"github.com/reusee/bf/ops"
	"github.com/reusee/bf/programs"
)

func TestTranslateEmpty(t *testing.T) {
	b, err := Translate("")
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Steps) != 0 {
		t.Fatalf("got %v", b.Steps)
	}
	if b.Len() != 0 || b.Depth() != 0 || b.String() != "" {
		t.Fatal()
	}
	out, err := RunString("", "input")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Fatalf("got %q", out)
	}
}

func TestTranslateStructure(t *testing.T) {
	b, err := Translate("+ +[>-[.]<],")
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Steps) != 4 {
		t.Fatalf("got %d steps", len(b.Steps))
	}
	for i, want := range []ops.Op{ops.OpIncrement, ops.OpIncrement, ops.OpLoopStart, ops.OpInput} {
		if b.Steps[i].Op != want {
			t.Fatalf("step %d: got %v", i, b.Steps[i].Op)
		}
	}
	if b.Steps[1].Pos != 2 {
		t.Fatalf("got %d", b.Steps[1].Pos)
	}

	loop := b.Steps[2]
	if !loop.IsLoop() || loop.Pos != 3 {
		t.Fatalf("got %+v", loop)
	}
	if str := loop.Body.String(); str != ">-[.]<" {
		t.Fatalf("got %s", str)
	}
	inner := loop.Body.Steps[2]
	if !inner.IsLoop() || len(inner.Body.Steps) != 1 || inner.Body.Steps[0].Op != ops.OpOutput {
		t.Fatalf("got %+v", inner)
	}
	if b.Steps[0].Body != nil || b.Steps[3].Body != nil {
		t.Fatal("only loop nodes have bodies")
	}

	if b.Depth() != 2 {
		t.Fatalf("got %d", b.Depth())
	}
	if b.Len() != ops.Count("+ +[>-[.]<],") {
		t.Fatalf("got %d", b.Len())
	}
}

func TestNoMerging(t *testing.T) {
	b, err := Translate("+++>>>")
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Steps) != 6 {
		t.Fatalf("got %d", len(b.Steps))
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	for _, name := range programs.Names() {
		src := programs.MustGet(name)
		b, err := Translate(src)
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != ops.Strip(src) {
			t.Fatalf("%s: round trip mismatch", name)
		}
	}
}

func TestTranslateMalformed(t *testing.T) {
	_, err := Translate("+[[-]")
	var m *ops.MalformedError
	if !errors.As(err, &m) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ops.ErrUnmatchedOpen) || m.Pos != 1 {
		t.Fatalf("got %v", err)
	}

	_, err = Translate("[]]")
	if !errors.As(err, &m) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ops.ErrUnmatchedClose) || m.Pos != 2 {
		t.Fatalf("got %v", err)
	}

	// agrees with the validation pre-pass
	for _, src := range []string{"[", "]", "[[]", "[]][", "a[b]c]"} {
		_, err := Translate(src)
		if fmt.Sprint(err) != fmt.Sprint(ops.Validate(src)) {
			t.Fatalf("%q: %v vs %v", src, err, ops.Validate(src))
		}
	}
}

func TestSegments(t *testing.T) {
	b, err := Translate("+>[-]<<[.],,")
	if err != nil {
		t.Fatal(err)
	}
	var shapes []string
	for seg := range b.Segments() {
		if seg.Loop != nil {
			shapes = append(shapes, "loop:"+seg.Loop.Body.String())
		} else {
			shapes = append(shapes, fmt.Sprintf("seq:%d", len(seg.Steps)))
		}
	}
	if str := fmt.Sprintf("%v", shapes); str != "[seq:2 loop:- seq:2 loop:. seq:2]" {
		t.Fatalf("got %s", str)
	}

	b, err = Translate("[][]")
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for seg := range b.Segments() {
		if seg.Loop == nil {
			t.Fatal()
		}
		n++
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestWalk(t *testing.T) {
	b, err := Translate("+[-[>]]")
	if err != nil {
		t.Fatal(err)
	}
	var visits []string
	b.Walk(func(step Step, depth int) bool {
		visits = append(visits, fmt.Sprintf("%v@%d", step.Op, depth))
		return true
	})
	if str := fmt.Sprintf("%v", visits); str != "[+@0 [@0 -@1 [@1 >@2]" {
		t.Fatalf("got %s", str)
	}

	n := 0
	b.Walk(func(step Step, depth int) bool {
		n++
		return !step.IsLoop()
	})
	if n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestExecScenarios(t *testing.T) {
	out, err := RunString(programs.MustGet("hello"), "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}

	rot13 := programs.MustGet("rot13")
	out, err = RunString(rot13, "How I Start\n")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Ubj V Fgneg\n" {
		t.Fatalf("got %q", out)
	}
	out, err = RunString(rot13, out)
	if err != nil {
		t.Fatal(err)
	}
	if out != "How I Start\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecHalts(t *testing.T) {
	for src, want := range map[string]string{
		"<+.":           "",
		"+[>+[<-]<]++.": "",
		"+.[<].":        "\x01",
		"[.]+.":         "\x01",
		",.":            "\xff",
	} {
		out, err := RunString(src, "")
		if err != nil {
			t.Fatal(err)
		}
		if out != want {
			t.Fatalf("%q: got %q, want %q", src, out, want)
		}
	}
}

func TestEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		src := programs.Random(rnd, 2)
		input := fmt.Sprint(rnd.Uint32())
		want, err := interps.InterpretString(src, input)
		if err != nil {
			t.Fatal(err)
		}
		got, err := RunString(src, input)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%q with input %q: got %q, want %q", src, input, got, want)
		}
	}
}
