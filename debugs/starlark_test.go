package debugs

import (
	"testing"

	"github.com/reusee/bf/tapes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	exported := func(s string) starlark.Value {
		d := starlark.NewDict(1)
		d.SetKey(starlark.String("Exported"), starlark.String(s))
		return d
	}
	ptrStruct := &testStruct{
		Exported:   "hello",
		unexported: 42,
	}
	tape := tapes.New()
	tape.Inc()
	tape.Right()

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"uint64", uint64(1 << 40), starlark.MakeUint64(1 << 40)},
		{"starlark value", starlark.String("x"), starlark.String("x")},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]string", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map[int]bool", map[int]bool{1: true}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.MakeInt(1), starlark.True)
			return d
		}()},
		{"struct", testStruct{Exported: "hello"}, exported("hello")},
		{"pointer to struct", ptrStruct, exported("hello")},
		{"pointer to pointer", &ptrStruct, exported("hello")},
		{"nil pointer", (*testStruct)(nil), starlark.None},
		{"tape", tape, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("cells"), starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(0)}))
			d.SetKey(starlark.String("cursor"), starlark.MakeInt(1))
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
