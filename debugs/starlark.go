package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/bf/tapes"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case []byte:
		return starlark.Bytes(v)
	case *tapes.Tape:
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("cells"), cellsOf(v.Cells))
		d.SetKey(starlark.String("cursor"), starlark.MakeInt(v.Pos))
		return d
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())

	case reflect.Slice, reflect.Array:
		return listOf(value)

	case reflect.Map:
		return dictOfMap(value)

	case reflect.Struct:
		return dictOfStruct(value)

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", v)

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func listOf(value reflect.Value) *starlark.List {
	elems := make([]starlark.Value, value.Len())
	for i := range elems {
		elems[i] = toStarlarkValue(value.Index(i).Interface())
	}
	return starlark.NewList(elems)
}

func dictOfMap(value reflect.Value) *starlark.Dict {
	d := starlark.NewDict(value.Len())
	for k, v := range value.Seq2() {
		d.SetKey(toStarlarkValue(k.Interface()), toStarlarkValue(v.Interface()))
	}
	return d
}

// dictOfStruct maps exported field names to values.
func dictOfStruct(value reflect.Value) *starlark.Dict {
	d := starlark.NewDict(value.NumField())
	typ := value.Type()
	for i := range typ.NumField() {
		if field := typ.Field(i); field.IsExported() {
			d.SetKey(starlark.String(field.Name), toStarlarkValue(value.Field(i).Interface()))
		}
	}
	return d
}

// cellsOf converts tape cells to a list of ints, so that indexing yields numbers.
func cellsOf(cells []byte) *starlark.List {
	values := make([]starlark.Value, 0, len(cells))
	for _, c := range cells {
		values = append(values, starlark.MakeInt(int(c)))
	}
	return starlark.NewList(values)
}
