package code

import "strings"

// Features selects the post-MVP proposals accepted by the decoder. Operators from a disabled
// proposal fail validation.
type Features struct {
	SignExtension        bool `envconfig:"SIGN_EXTENSION"`
	SaturatingFloatToInt bool `envconfig:"SATURATING_FLOAT_TO_INT"`
	BulkMemory           bool `envconfig:"BULK_MEMORY"`
	ReferenceTypes       bool `envconfig:"REFERENCE_TYPES"`
	TailCall             bool `envconfig:"TAIL_CALL"`
}

// DefaultFeatures enables the sign-extension and non-trapping float-to-int proposals.
func DefaultFeatures() Features {
	return Features{
		SignExtension:        true,
		SaturatingFloatToInt: true,
	}
}

func (f Features) String() string {
	var names []string
	add := func(enabled bool, name string) {
		if enabled {
			names = append(names, name)
		}
	}
	add(f.SignExtension, "sign-extension")
	add(f.SaturatingFloatToInt, "saturating-float-to-int")
	add(f.BulkMemory, "bulk-memory")
	add(f.ReferenceTypes, "reference-types")
	add(f.TailCall, "tail-call")
	if len(names) == 0 {
		return "mvp"
	}
	return strings.Join(names, ",")
}

// check returns the name of the proposal that introduced the instruction if that proposal
// is disabled.
func (f Features) check(opcode byte, subop uint32) (string, bool) {
	switch {
	case opcode >= OpI32Extend8S && opcode <= OpI64Extend32S:
		return "sign-extension", f.SignExtension
	case opcode == OpReturnCall || opcode == OpReturnCallIndirect:
		return "tail-call", f.TailCall
	case opcode == OpSelectT || opcode == OpTableGet || opcode == OpTableSet ||
		opcode == OpRefNull || opcode == OpRefIsNull || opcode == OpRefFunc:
		return "reference-types", f.ReferenceTypes
	case opcode == OpPrefix:
		switch {
		case subop <= OpI64TruncSatF64U:
			return "saturating-float-to-int", f.SaturatingFloatToInt
		case subop >= OpTableGrow:
			return "reference-types", f.ReferenceTypes
		default:
			return "bulk-memory", f.BulkMemory
		}
	}
	return "", true
}
