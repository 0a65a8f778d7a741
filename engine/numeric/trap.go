package numeric

// A Trap identifies the reason a Wasm operation aborted execution. Traps that can be decided at
// translation time are reproduced in the emitted bytecode.
type Trap uint8

const (
	TrapUnreachable Trap = iota
	TrapMemoryOutOfBounds
	TrapTableOutOfBounds
	TrapIndirectCallToNull
	TrapBadSignature
	TrapIntegerOverflow
	TrapIntegerDivideByZero
	TrapBadConversionToInteger
	TrapStackOverflow
)

var trapMessages = [...]string{
	TrapUnreachable:            "unreachable",
	TrapMemoryOutOfBounds:      "out of bounds memory access",
	TrapTableOutOfBounds:       "undefined element",
	TrapIndirectCallToNull:     "uninitialized element",
	TrapBadSignature:           "indirect call type mismatch",
	TrapIntegerOverflow:        "integer overflow",
	TrapIntegerDivideByZero:    "integer divide by zero",
	TrapBadConversionToInteger: "invalid conversion to integer",
	TrapStackOverflow:          "call stack exhausted",
}

func (t Trap) Error() string {
	if int(t) < len(trapMessages) {
		return trapMessages[t]
	}
	return "unknown trap"
}
