package sources

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
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

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inc.bf")
	if err := os.WriteFile(path, []byte("+++ add three\n."), 0644); err != nil {
		t.Fatal(err)
	}
	newScope(t).Call(func(
		loader Loader,
	) {
		src, err := loader.FromFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if src.Name != path || src.Text != "+++ add three\n." {
			t.Fatalf("got %+v", src)
		}

		_, err = loader.FromFile(filepath.Join(dir, "missing.bf"))
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), ErrUnreadable.Error()) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestFromReader(t *testing.T) {
	newScope(t).Call(func(
		loader Loader,
	) {
		src, err := loader.FromReader("stdin", strings.NewReader(",[.,]"))
		if err != nil {
			t.Fatal(err)
		}
		if src.Text != ",[.,]" {
			t.Fatalf("got %q", src.Text)
		}

		_, err = loader.FromReader("stdin", iotest.ErrReader(io.ErrUnexpectedEOF))
		if err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestNonTextWarning(t *testing.T) {
	buf := new(bytes.Buffer)
	newScope(t,
		func() logs.Writer {
			return buf
		},
	).Call(func(
		loader Loader,
	) {
		src, err := loader.FromReader("blob", bytes.NewReader([]byte{0, 1, 2, '+', 0xff, 0xfe}))
		if err != nil {
			t.Fatal(err)
		}
		if len(src.Text) != 6 {
			t.Fatalf("got %q", src.Text)
		}
		if !strings.Contains(buf.String(), "source does not look like text") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello.bf" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, programs.MustGet("hello"))
	}))
	defer server.Close()

	newScope(t).Call(func(
		loader Loader,
	) {
		ctx := context.Background()
		src, err := loader.FromURL(ctx, server.URL+"/hello.bf")
		if err != nil {
			t.Fatal(err)
		}
		if src.Text != programs.MustGet("hello") {
			t.Fatalf("got %q", src.Text)
		}

		_, err = loader.FromURL(ctx, server.URL+"/nope.bf")
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestBuiltin(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.bf"), []byte("+."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bang.bf"), []byte("+++++[>+++++++<-]>-."), 0644); err != nil {
		t.Fatal(err)
	}

	newScope(t).Call(func(
		loader Loader,
	) {
		src, err := loader.Builtin("rot13")
		if err != nil {
			t.Fatal(err)
		}
		if src.Text != programs.MustGet("rot13") {
			t.Fatal("not the embedded program")
		}
		if _, err := loader.Builtin("bang"); !errors.Is(err, programs.ErrNotFound) {
			t.Fatalf("got %v", err)
		}
	})

	newScope(t,
		dscope.Provide(bfconfigs.ProgramsDir(dir)),
	).Call(func(
		loader Loader,
	) {
		src, err := loader.Builtin("hello")
		if err != nil {
			t.Fatal(err)
		}
		if src.Text != "+." {
			t.Fatalf("got %q", src.Text)
		}
		names, err := loader.Names()
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Join(names, " "); got != "bang cat hello rot13 wrap" {
			t.Fatalf("got %s", got)
		}
	})
}
