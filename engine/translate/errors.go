package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pgavlin/rwarp/engine/constpool"
	"github.com/pgavlin/rwarp/wasm"
)

// Kind categorizes a translation error.
type Kind string

const (
	// Index-out-of-bounds errors.
	KindFunctionIndexOutOfBounds Kind = "function_index_out_of_bounds"
	KindTypeIndexOutOfBounds     Kind = "type_index_out_of_bounds"
	KindLocalIndexOutOfBounds    Kind = "local_index_out_of_bounds"
	KindGlobalIndexOutOfBounds   Kind = "global_index_out_of_bounds"
	KindTableIndexOutOfBounds    Kind = "table_index_out_of_bounds"
	KindMemoryIndexOutOfBounds   Kind = "memory_index_out_of_bounds"
	KindDataIndexOutOfBounds     Kind = "data_segment_index_out_of_bounds"
	KindElementIndexOutOfBounds  Kind = "element_segment_index_out_of_bounds"

	// Encoding-limit errors.
	KindTooManyRegisters              Kind = "too_many_registers"
	KindTooManyLocals                 Kind = "too_many_locals"
	KindTooManyConstants              Kind = "too_many_constants"
	KindBranchTableTargetsOutOfBounds Kind = "branch_table_targets_out_of_bounds"

	// Unsupported constructs.
	KindUnsupportedValueType Kind = "unsupported_value_type"
	KindUnsupportedBlockType Kind = "unsupported_block_type"
	KindNotImplemented       Kind = "not_implemented"

	// Failures reported by the decoder.
	KindValidation Kind = "validation"
	KindDecode     Kind = "decode"

	// The function body ended without its terminal end.
	KindMissingEnd Kind = "missing_end"
)

// Error is the error type returned by the translator. Errors match sentinels of the same kind
// under errors.Is.
type Error struct {
	Kind   Kind
	Index  uint32 // the offending index, if any
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(string(e.Kind), "_", " "))

	switch e.Kind {
	case KindFunctionIndexOutOfBounds, KindTypeIndexOutOfBounds, KindLocalIndexOutOfBounds,
		KindGlobalIndexOutOfBounds, KindTableIndexOutOfBounds, KindMemoryIndexOutOfBounds,
		KindDataIndexOutOfBounds, KindElementIndexOutOfBounds:
		fmt.Fprintf(&b, ": %d", e.Index)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrFunctionIndexOutOfBounds = &Error{Kind: KindFunctionIndexOutOfBounds}
	ErrTypeIndexOutOfBounds     = &Error{Kind: KindTypeIndexOutOfBounds}
	ErrLocalIndexOutOfBounds    = &Error{Kind: KindLocalIndexOutOfBounds}
	ErrGlobalIndexOutOfBounds   = &Error{Kind: KindGlobalIndexOutOfBounds}
	ErrTableIndexOutOfBounds    = &Error{Kind: KindTableIndexOutOfBounds}
	ErrMemoryIndexOutOfBounds   = &Error{Kind: KindMemoryIndexOutOfBounds}
	ErrDataIndexOutOfBounds     = &Error{Kind: KindDataIndexOutOfBounds}
	ErrElementIndexOutOfBounds  = &Error{Kind: KindElementIndexOutOfBounds}

	ErrTooManyRegisters              = &Error{Kind: KindTooManyRegisters}
	ErrTooManyLocals                 = &Error{Kind: KindTooManyLocals}
	ErrTooManyConstants              = &Error{Kind: KindTooManyConstants}
	ErrBranchTableTargetsOutOfBounds = &Error{Kind: KindBranchTableTargetsOutOfBounds}

	ErrUnsupportedValueType = &Error{Kind: KindUnsupportedValueType}
	ErrUnsupportedBlockType = &Error{Kind: KindUnsupportedBlockType}
	ErrNotImplemented       = &Error{Kind: KindNotImplemented}

	ErrValidation = &Error{Kind: KindValidation}
	ErrDecode     = &Error{Kind: KindDecode}
	ErrMissingEnd = &Error{Kind: KindMissingEnd}
)

func indexError(kind Kind, index uint32) error {
	return &Error{Kind: kind, Index: index}
}

func notImplemented(op string) error {
	return &Error{Kind: KindNotImplemented, Detail: op}
}

// WrapDecodeError classifies an error returned by the decoder. Validation failures keep their
// wasm.ValidationError cause so that errors.As still finds them.
func WrapDecodeError(err error) error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return err
	}
	var verr wasm.ValidationError
	if errors.As(err, &verr) {
		return &Error{Kind: KindValidation, Cause: err}
	}
	return &Error{Kind: KindDecode, Cause: err}
}

// constantError maps constant pool failures onto the translator's taxonomy.
func constantError(err error) error {
	if errors.Is(err, constpool.ErrTooManyConstants) {
		return &Error{Kind: KindTooManyConstants, Cause: err}
	}
	return err
}
