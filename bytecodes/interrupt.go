package bytecodes

// Interrupt is yielded by Run when it pauses without error.
type Interrupt struct {
	Yield bool
}

var InterruptYield = &Interrupt{
	Yield: true,
}
