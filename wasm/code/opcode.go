package code

// Single-byte opcodes.
const (
	OpUnreachable        = 0x00
	OpNop                = 0x01
	OpBlock              = 0x02
	OpLoop               = 0x03
	OpIf                 = 0x04
	OpElse               = 0x05
	OpEnd                = 0x0b
	OpBr                 = 0x0c
	OpBrIf               = 0x0d
	OpBrTable            = 0x0e
	OpReturn             = 0x0f
	OpCall               = 0x10
	OpCallIndirect       = 0x11
	OpReturnCall         = 0x12
	OpReturnCallIndirect = 0x13
	OpDrop               = 0x1a
	OpSelect             = 0x1b
	OpSelectT            = 0x1c
	OpLocalGet           = 0x20
	OpLocalSet           = 0x21
	OpLocalTee           = 0x22
	OpGlobalGet          = 0x23
	OpGlobalSet          = 0x24
	OpTableGet           = 0x25
	OpTableSet           = 0x26
	OpI32Load            = 0x28
	OpI64Load            = 0x29
	OpF32Load            = 0x2a
	OpF64Load            = 0x2b
	OpI32Load8S          = 0x2c
	OpI32Load8U          = 0x2d
	OpI32Load16S         = 0x2e
	OpI32Load16U         = 0x2f
	OpI64Load8S          = 0x30
	OpI64Load8U          = 0x31
	OpI64Load16S         = 0x32
	OpI64Load16U         = 0x33
	OpI64Load32S         = 0x34
	OpI64Load32U         = 0x35
	OpI32Store           = 0x36
	OpI64Store           = 0x37
	OpF32Store           = 0x38
	OpF64Store           = 0x39
	OpI32Store8          = 0x3a
	OpI32Store16         = 0x3b
	OpI64Store8          = 0x3c
	OpI64Store16         = 0x3d
	OpI64Store32         = 0x3e
	OpMemorySize         = 0x3f
	OpMemoryGrow         = 0x40
	OpI32Const           = 0x41
	OpI64Const           = 0x42
	OpF32Const           = 0x43
	OpF64Const           = 0x44
	OpI32Eqz             = 0x45
	OpI32Eq              = 0x46
	OpI32Ne              = 0x47
	OpI32LtS             = 0x48
	OpI32LtU             = 0x49
	OpI32GtS             = 0x4a
	OpI32GtU             = 0x4b
	OpI32LeS             = 0x4c
	OpI32LeU             = 0x4d
	OpI32GeS             = 0x4e
	OpI32GeU             = 0x4f
	OpI64Eqz             = 0x50
	OpI64Eq              = 0x51
	OpI64Ne              = 0x52
	OpI64LtS             = 0x53
	OpI64LtU             = 0x54
	OpI64GtS             = 0x55
	OpI64GtU             = 0x56
	OpI64LeS             = 0x57
	OpI64LeU             = 0x58
	OpI64GeS             = 0x59
	OpI64GeU             = 0x5a
	OpF32Eq              = 0x5b
	OpF32Ne              = 0x5c
	OpF32Lt              = 0x5d
	OpF32Gt              = 0x5e
	OpF32Le              = 0x5f
	OpF32Ge              = 0x60
	OpF64Eq              = 0x61
	OpF64Ne              = 0x62
	OpF64Lt              = 0x63
	OpF64Gt              = 0x64
	OpF64Le              = 0x65
	OpF64Ge              = 0x66
	OpI32Clz             = 0x67
	OpI32Ctz             = 0x68
	OpI32Popcnt          = 0x69
	OpI32Add             = 0x6a
	OpI32Sub             = 0x6b
	OpI32Mul             = 0x6c
	OpI32DivS            = 0x6d
	OpI32DivU            = 0x6e
	OpI32RemS            = 0x6f
	OpI32RemU            = 0x70
	OpI32And             = 0x71
	OpI32Or              = 0x72
	OpI32Xor             = 0x73
	OpI32Shl             = 0x74
	OpI32ShrS            = 0x75
	OpI32ShrU            = 0x76
	OpI32Rotl            = 0x77
	OpI32Rotr            = 0x78
	OpI64Clz             = 0x79
	OpI64Ctz             = 0x7a
	OpI64Popcnt          = 0x7b
	OpI64Add             = 0x7c
	OpI64Sub             = 0x7d
	OpI64Mul             = 0x7e
	OpI64DivS            = 0x7f
	OpI64DivU            = 0x80
	OpI64RemS            = 0x81
	OpI64RemU            = 0x82
	OpI64And             = 0x83
	OpI64Or              = 0x84
	OpI64Xor             = 0x85
	OpI64Shl             = 0x86
	OpI64ShrS            = 0x87
	OpI64ShrU            = 0x88
	OpI64Rotl            = 0x89
	OpI64Rotr            = 0x8a
	OpF32Abs             = 0x8b
	OpF32Neg             = 0x8c
	OpF32Ceil            = 0x8d
	OpF32Floor           = 0x8e
	OpF32Trunc           = 0x8f
	OpF32Nearest         = 0x90
	OpF32Sqrt            = 0x91
	OpF32Add             = 0x92
	OpF32Sub             = 0x93
	OpF32Mul             = 0x94
	OpF32Div             = 0x95
	OpF32Min             = 0x96
	OpF32Max             = 0x97
	OpF32Copysign        = 0x98
	OpF64Abs             = 0x99
	OpF64Neg             = 0x9a
	OpF64Ceil            = 0x9b
	OpF64Floor           = 0x9c
	OpF64Trunc           = 0x9d
	OpF64Nearest         = 0x9e
	OpF64Sqrt            = 0x9f
	OpF64Add             = 0xa0
	OpF64Sub             = 0xa1
	OpF64Mul             = 0xa2
	OpF64Div             = 0xa3
	OpF64Min             = 0xa4
	OpF64Max             = 0xa5
	OpF64Copysign        = 0xa6
	OpI32WrapI64         = 0xa7
	OpI32TruncF32S       = 0xa8
	OpI32TruncF32U       = 0xa9
	OpI32TruncF64S       = 0xaa
	OpI32TruncF64U       = 0xab
	OpI64ExtendI32S      = 0xac
	OpI64ExtendI32U      = 0xad
	OpI64TruncF32S       = 0xae
	OpI64TruncF32U       = 0xaf
	OpI64TruncF64S       = 0xb0
	OpI64TruncF64U       = 0xb1
	OpF32ConvertI32S     = 0xb2
	OpF32ConvertI32U     = 0xb3
	OpF32ConvertI64S     = 0xb4
	OpF32ConvertI64U     = 0xb5
	OpF32DemoteF64       = 0xb6
	OpF64ConvertI32S     = 0xb7
	OpF64ConvertI32U     = 0xb8
	OpF64ConvertI64S     = 0xb9
	OpF64ConvertI64U     = 0xba
	OpF64PromoteF32      = 0xbb
	OpI32ReinterpretF32  = 0xbc
	OpI64ReinterpretF64  = 0xbd
	OpF32ReinterpretI32  = 0xbe
	OpF64ReinterpretI64  = 0xbf
	OpI32Extend8S        = 0xc0
	OpI32Extend16S       = 0xc1
	OpI64Extend8S        = 0xc2
	OpI64Extend16S       = 0xc3
	OpI64Extend32S       = 0xc4
	OpRefNull            = 0xd0
	OpRefIsNull          = 0xd1
	OpRefFunc            = 0xd2

	OpPrefix = 0xfc
)

// Sub-opcodes of the 0xfc prefix.
const (
	OpI32TruncSatF32S = 0
	OpI32TruncSatF32U = 1
	OpI32TruncSatF64S = 2
	OpI32TruncSatF64U = 3
	OpI64TruncSatF32S = 4
	OpI64TruncSatF32U = 5
	OpI64TruncSatF64S = 6
	OpI64TruncSatF64U = 7
	OpMemoryInit      = 8
	OpDataDrop        = 9
	OpMemoryCopy      = 10
	OpMemoryFill      = 11
	OpTableInit       = 12
	OpElemDrop        = 13
	OpTableCopy       = 14
	OpTableGrow       = 15
	OpTableSize       = 16
	OpTableFill       = 17
)

var opNames = [256]string{
	OpUnreachable:        "unreachable",
	OpNop:                "nop",
	OpBlock:              "block",
	OpLoop:               "loop",
	OpIf:                 "if",
	OpElse:               "else",
	OpEnd:                "end",
	OpBr:                 "br",
	OpBrIf:               "br_if",
	OpBrTable:            "br_table",
	OpReturn:             "return",
	OpCall:               "call",
	OpCallIndirect:       "call_indirect",
	OpReturnCall:         "return_call",
	OpReturnCallIndirect: "return_call_indirect",
	OpDrop:               "drop",
	OpSelect:             "select",
	OpSelectT:            "select",
	OpLocalGet:           "local.get",
	OpLocalSet:           "local.set",
	OpLocalTee:           "local.tee",
	OpGlobalGet:          "global.get",
	OpGlobalSet:          "global.set",
	OpTableGet:           "table.get",
	OpTableSet:           "table.set",
	OpI32Load:            "i32.load",
	OpI64Load:            "i64.load",
	OpF32Load:            "f32.load",
	OpF64Load:            "f64.load",
	OpI32Load8S:          "i32.load8_s",
	OpI32Load8U:          "i32.load8_u",
	OpI32Load16S:         "i32.load16_s",
	OpI32Load16U:         "i32.load16_u",
	OpI64Load8S:          "i64.load8_s",
	OpI64Load8U:          "i64.load8_u",
	OpI64Load16S:         "i64.load16_s",
	OpI64Load16U:         "i64.load16_u",
	OpI64Load32S:         "i64.load32_s",
	OpI64Load32U:         "i64.load32_u",
	OpI32Store:           "i32.store",
	OpI64Store:           "i64.store",
	OpF32Store:           "f32.store",
	OpF64Store:           "f64.store",
	OpI32Store8:          "i32.store8",
	OpI32Store16:         "i32.store16",
	OpI64Store8:          "i64.store8",
	OpI64Store16:         "i64.store16",
	OpI64Store32:         "i64.store32",
	OpMemorySize:         "memory.size",
	OpMemoryGrow:         "memory.grow",
	OpI32Const:           "i32.const",
	OpI64Const:           "i64.const",
	OpF32Const:           "f32.const",
	OpF64Const:           "f64.const",
	OpI32Eqz:             "i32.eqz",
	OpI32Eq:              "i32.eq",
	OpI32Ne:              "i32.ne",
	OpI32LtS:             "i32.lt_s",
	OpI32LtU:             "i32.lt_u",
	OpI32GtS:             "i32.gt_s",
	OpI32GtU:             "i32.gt_u",
	OpI32LeS:             "i32.le_s",
	OpI32LeU:             "i32.le_u",
	OpI32GeS:             "i32.ge_s",
	OpI32GeU:             "i32.ge_u",
	OpI64Eqz:             "i64.eqz",
	OpI64Eq:              "i64.eq",
	OpI64Ne:              "i64.ne",
	OpI64LtS:             "i64.lt_s",
	OpI64LtU:             "i64.lt_u",
	OpI64GtS:             "i64.gt_s",
	OpI64GtU:             "i64.gt_u",
	OpI64LeS:             "i64.le_s",
	OpI64LeU:             "i64.le_u",
	OpI64GeS:             "i64.ge_s",
	OpI64GeU:             "i64.ge_u",
	OpF32Eq:              "f32.eq",
	OpF32Ne:              "f32.ne",
	OpF32Lt:              "f32.lt",
	OpF32Gt:              "f32.gt",
	OpF32Le:              "f32.le",
	OpF32Ge:              "f32.ge",
	OpF64Eq:              "f64.eq",
	OpF64Ne:              "f64.ne",
	OpF64Lt:              "f64.lt",
	OpF64Gt:              "f64.gt",
	OpF64Le:              "f64.le",
	OpF64Ge:              "f64.ge",
	OpI32Clz:             "i32.clz",
	OpI32Ctz:             "i32.ctz",
	OpI32Popcnt:          "i32.popcnt",
	OpI32Add:             "i32.add",
	OpI32Sub:             "i32.sub",
	OpI32Mul:             "i32.mul",
	OpI32DivS:            "i32.div_s",
	OpI32DivU:            "i32.div_u",
	OpI32RemS:            "i32.rem_s",
	OpI32RemU:            "i32.rem_u",
	OpI32And:             "i32.and",
	OpI32Or:              "i32.or",
	OpI32Xor:             "i32.xor",
	OpI32Shl:             "i32.shl",
	OpI32ShrS:            "i32.shr_s",
	OpI32ShrU:            "i32.shr_u",
	OpI32Rotl:            "i32.rotl",
	OpI32Rotr:            "i32.rotr",
	OpI64Clz:             "i64.clz",
	OpI64Ctz:             "i64.ctz",
	OpI64Popcnt:          "i64.popcnt",
	OpI64Add:             "i64.add",
	OpI64Sub:             "i64.sub",
	OpI64Mul:             "i64.mul",
	OpI64DivS:            "i64.div_s",
	OpI64DivU:            "i64.div_u",
	OpI64RemS:            "i64.rem_s",
	OpI64RemU:            "i64.rem_u",
	OpI64And:             "i64.and",
	OpI64Or:              "i64.or",
	OpI64Xor:             "i64.xor",
	OpI64Shl:             "i64.shl",
	OpI64ShrS:            "i64.shr_s",
	OpI64ShrU:            "i64.shr_u",
	OpI64Rotl:            "i64.rotl",
	OpI64Rotr:            "i64.rotr",
	OpF32Abs:             "f32.abs",
	OpF32Neg:             "f32.neg",
	OpF32Ceil:            "f32.ceil",
	OpF32Floor:           "f32.floor",
	OpF32Trunc:           "f32.trunc",
	OpF32Nearest:         "f32.nearest",
	OpF32Sqrt:            "f32.sqrt",
	OpF32Add:             "f32.add",
	OpF32Sub:             "f32.sub",
	OpF32Mul:             "f32.mul",
	OpF32Div:             "f32.div",
	OpF32Min:             "f32.min",
	OpF32Max:             "f32.max",
	OpF32Copysign:        "f32.copysign",
	OpF64Abs:             "f64.abs",
	OpF64Neg:             "f64.neg",
	OpF64Ceil:            "f64.ceil",
	OpF64Floor:           "f64.floor",
	OpF64Trunc:           "f64.trunc",
	OpF64Nearest:         "f64.nearest",
	OpF64Sqrt:            "f64.sqrt",
	OpF64Add:             "f64.add",
	OpF64Sub:             "f64.sub",
	OpF64Mul:             "f64.mul",
	OpF64Div:             "f64.div",
	OpF64Min:             "f64.min",
	OpF64Max:             "f64.max",
	OpF64Copysign:        "f64.copysign",
	OpI32WrapI64:         "i32.wrap_i64",
	OpI32TruncF32S:       "i32.trunc_f32_s",
	OpI32TruncF32U:       "i32.trunc_f32_u",
	OpI32TruncF64S:       "i32.trunc_f64_s",
	OpI32TruncF64U:       "i32.trunc_f64_u",
	OpI64ExtendI32S:      "i64.extend_i32_s",
	OpI64ExtendI32U:      "i64.extend_i32_u",
	OpI64TruncF32S:       "i64.trunc_f32_s",
	OpI64TruncF32U:       "i64.trunc_f32_u",
	OpI64TruncF64S:       "i64.trunc_f64_s",
	OpI64TruncF64U:       "i64.trunc_f64_u",
	OpF32ConvertI32S:     "f32.convert_i32_s",
	OpF32ConvertI32U:     "f32.convert_i32_u",
	OpF32ConvertI64S:     "f32.convert_i64_s",
	OpF32ConvertI64U:     "f32.convert_i64_u",
	OpF32DemoteF64:       "f32.demote_f64",
	OpF64ConvertI32S:     "f64.convert_i32_s",
	OpF64ConvertI32U:     "f64.convert_i32_u",
	OpF64ConvertI64S:     "f64.convert_i64_s",
	OpF64ConvertI64U:     "f64.convert_i64_u",
	OpF64PromoteF32:      "f64.promote_f32",
	OpI32ReinterpretF32:  "i32.reinterpret_f32",
	OpI64ReinterpretF64:  "i64.reinterpret_f64",
	OpF32ReinterpretI32:  "f32.reinterpret_i32",
	OpF64ReinterpretI64:  "f64.reinterpret_i64",
	OpI32Extend8S:        "i32.extend8_s",
	OpI32Extend16S:       "i32.extend16_s",
	OpI64Extend8S:        "i64.extend8_s",
	OpI64Extend16S:       "i64.extend16_s",
	OpI64Extend32S:       "i64.extend32_s",
	OpRefNull:            "ref.null",
	OpRefIsNull:          "ref.is_null",
	OpRefFunc:            "ref.func",
}

var prefixNames = [...]string{
	OpI32TruncSatF32S: "i32.trunc_sat_f32_s",
	OpI32TruncSatF32U: "i32.trunc_sat_f32_u",
	OpI32TruncSatF64S: "i32.trunc_sat_f64_s",
	OpI32TruncSatF64U: "i32.trunc_sat_f64_u",
	OpI64TruncSatF32S: "i64.trunc_sat_f32_s",
	OpI64TruncSatF32U: "i64.trunc_sat_f32_u",
	OpI64TruncSatF64S: "i64.trunc_sat_f64_s",
	OpI64TruncSatF64U: "i64.trunc_sat_f64_u",
	OpMemoryInit:      "memory.init",
	OpDataDrop:        "data.drop",
	OpMemoryCopy:      "memory.copy",
	OpMemoryFill:      "memory.fill",
	OpTableInit:       "table.init",
	OpElemDrop:        "elem.drop",
	OpTableCopy:       "table.copy",
	OpTableGrow:       "table.grow",
	OpTableSize:       "table.size",
	OpTableFill:       "table.fill",
}

// OpName returns the text-format name of a single-byte opcode, or the empty string if the
// opcode is unknown.
func OpName(opcode byte) string {
	return opNames[opcode]
}

// PrefixName returns the text-format name of a 0xfc-prefixed opcode, or the empty string
// if the sub-opcode is unknown.
func PrefixName(subop uint32) string {
	if subop >= uint32(len(prefixNames)) {
		return ""
	}
	return prefixNames[subop]
}
