package cmds

// Var defines name taking one argument, and name+"." resetting the value to zero.
func Var[T any](name string, desc string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name turning a flag on, and "!"+name turning it off.
func Switch(name string, desc string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("unset "+name))
	return value
}

// Collect defines name appending its argument on each use.
func Collect[T any](name string, desc string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc(desc))
	return values
}
