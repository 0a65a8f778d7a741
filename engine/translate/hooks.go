package translate

import (
	"math"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
)

// Identity hooks. Each hook pushes the result it computed and reports true, or leaves the stack
// untouched and reports false. Rules that depend on the value of an unknown float operand are
// only included when they hold for every value of that operand, including NaNs, infinities and
// both zeros.

// intConsts holds the interesting constants of an integer type.
type intConsts struct {
	zero     numeric.Value
	one      numeric.Value
	minusOne numeric.Value
	min      numeric.Value // signed minimum
	max      numeric.Value // signed maximum
	umax     numeric.Value // unsigned maximum; identical to minusOne
}

var (
	i32Consts = intConsts{
		zero:     numeric.I32(0),
		one:      numeric.I32(1),
		minusOne: numeric.I32(-1),
		min:      numeric.I32(math.MinInt32),
		max:      numeric.I32(math.MaxInt32),
		umax:     numeric.I32(-1),
	}
	i64Consts = intConsts{
		zero:     numeric.I64(0),
		one:      numeric.I64(1),
		minusOne: numeric.I64(-1),
		min:      numeric.I64(math.MinInt64),
		max:      numeric.I64(math.MaxInt64),
		umax:     numeric.I64(-1),
	}

	valueTrue  = numeric.Bool(true)
	valueFalse = numeric.Bool(false)
)

func matches(v numeric.Value, candidates []numeric.Value) bool {
	for _, c := range candidates {
		if v == c {
			return true
		}
	}
	return false
}

// sameRegIsOperand implements x op x = x.
func sameRegIsOperand(t *FuncTranslator, reg bytecode.Register) (bool, error) {
	t.stack.pushRegister(reg)
	return true, nil
}

// sameRegIs implements x op x = result.
func sameRegIs(result numeric.Value) sameRegHook {
	return func(t *FuncTranslator, reg bytecode.Register) (bool, error) {
		t.stack.pushConst(result)
		return true, nil
	}
}

// regImmIsOperand implements x op c = x for each c in imms. Candidates are compared bitwise, so
// +0.0 and -0.0 are distinct.
func regImmIsOperand(imms ...numeric.Value) regImmHook {
	return func(t *FuncTranslator, lhs bytecode.Register, rhs numeric.Value) (bool, error) {
		if matches(rhs, imms) {
			t.stack.pushRegister(lhs)
			return true, nil
		}
		return false, nil
	}
}

// regImmIs implements x op c = result for each c in imms.
func regImmIs(result numeric.Value, imms ...numeric.Value) regImmHook {
	return func(t *FuncTranslator, lhs bytecode.Register, rhs numeric.Value) (bool, error) {
		if matches(rhs, imms) {
			t.stack.pushConst(result)
			return true, nil
		}
		return false, nil
	}
}

// immRegIs implements c op x = result for each c in imms.
func immRegIs(result numeric.Value, imms ...numeric.Value) immRegHook {
	return func(t *FuncTranslator, lhs numeric.Value, rhs bytecode.Register) (bool, error) {
		if matches(lhs, imms) {
			t.stack.pushConst(result)
			return true, nil
		}
		return false, nil
	}
}

// immRegIsImm implements c op x = c for each c in imms.
func immRegIsImm(imms ...numeric.Value) immRegHook {
	return func(t *FuncTranslator, lhs numeric.Value, rhs bytecode.Register) (bool, error) {
		if matches(lhs, imms) {
			t.stack.pushConst(lhs)
			return true, nil
		}
		return false, nil
	}
}

// regImmAny tries each hook in turn.
func regImmAny(hooks ...regImmHook) regImmHook {
	return func(t *FuncTranslator, lhs bytecode.Register, rhs numeric.Value) (bool, error) {
		for _, h := range hooks {
			if handled, err := h(t, lhs, rhs); handled || err != nil {
				return handled, err
			}
		}
		return false, nil
	}
}

// regNaNIs implements x op NaN = result for float comparisons.
func regNaNIs(result numeric.Value) regImmHook {
	return func(t *FuncTranslator, lhs bytecode.Register, rhs numeric.Value) (bool, error) {
		if rhs.IsNaN() {
			t.stack.pushConst(result)
			return true, nil
		}
		return false, nil
	}
}

// nanRegIs implements NaN op x = result for float comparisons.
func nanRegIs(result numeric.Value) immRegHook {
	return func(t *FuncTranslator, lhs numeric.Value, rhs bytecode.Register) (bool, error) {
		if lhs.IsNaN() {
			t.stack.pushConst(result)
			return true, nil
		}
		return false, nil
	}
}
