package check

// compareValues evaluates a single comparison link. comparable is false
// when the operand types are not ordered against each other; callers
// degrade to the generic message form in that case.
func compareValues(a interface{}, op Operator, b interface{}) (held, comparable bool) {
	if af, bf, ok := bothFloats(a, b); ok {
		return compareOrdered(af, op, bf), true
	}
	if ai, bi, ok := bothInts(a, b); ok {
		return compareOrdered(ai, op, bi), true
	}
	if au, bu, ok := bothUints(a, b); ok {
		return compareOrdered(au, op, bu), true
	}
	if ai, aok := asInt(a); aok {
		if bu, bok := asUint(b); bok {
			return opHolds(orderIntUint(ai, bu), op), true
		}
	}
	if au, aok := asUint(a); aok {
		if bi, bok := asInt(b); bok {
			return opHolds(-orderIntUint(bi, au), op), true
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return compareOrdered(as, op, bs), true
		}
	}

	// Unordered but comparable types still support equality.
	if op == Eq || op == NotEq {
		if isComparableKind(a) && isComparableKind(b) {
			eq := a == b
			return (op == Eq) == eq, true
		}
	}

	return false, false
}

func compareOrdered[T int64 | uint64 | float64 | string](a T, op Operator, b T) bool {
	switch op {
	case Less:
		return a < b
	case LessEq:
		return a <= b
	case Greater:
		return a > b
	case GreaterEq:
		return a >= b
	case Eq:
		return a == b
	case NotEq:
		return a != b
	}
	return false
}

// orderIntUint orders an int64 against a uint64 exactly. Float promotion
// would lose precision above 2^53, so the unsigned comparison stays in
// integer space; a negative signed value orders below any unsigned one.
func orderIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	ui := uint64(i)
	switch {
	case ui < u:
		return -1
	case ui > u:
		return 1
	}
	return 0
}

// opHolds translates a three-way ordering into the operator's verdict.
func opHolds(order int, op Operator) bool {
	switch op {
	case Less:
		return order < 0
	case LessEq:
		return order <= 0
	case Greater:
		return order > 0
	case GreaterEq:
		return order >= 0
	case Eq:
		return order == 0
	case NotEq:
		return order != 0
	}
	return false
}

// bothFloats promotes mixed numeric pairs to float64 when either side is a
// float.
func bothFloats(a, b interface{}) (float64, float64, bool) {
	af, aIsFloat := asFloat(a)
	bf, bIsFloat := asFloat(b)
	if !aIsFloat && !bIsFloat {
		return 0, 0, false
	}
	if aIsFloat && bIsFloat {
		return af, bf, true
	}
	// One float, one integer: promote the integer.
	if aIsFloat {
		if bi, ok := asInt(b); ok {
			return af, float64(bi), true
		}
		if bu, ok := asUint(b); ok {
			return af, float64(bu), true
		}
	} else {
		if ai, ok := asInt(a); ok {
			return float64(ai), bf, true
		}
		if au, ok := asUint(a); ok {
			return float64(au), bf, true
		}
	}
	return 0, 0, false
}

func bothInts(a, b interface{}) (int64, int64, bool) {
	ai, aok := asInt(a)
	bi, bok := asInt(b)
	if aok && bok {
		return ai, bi, true
	}
	return 0, 0, false
}

func bothUints(a, b interface{}) (uint64, uint64, bool) {
	au, aok := asUint(a)
	bu, bok := asUint(b)
	if aok && bok {
		return au, bu, true
	}
	return 0, 0, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asUint(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	}
	return 0, false
}

// isComparableKind limits interface equality to kinds that cannot panic on
// ==.
func isComparableKind(v interface{}) bool {
	switch v.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return true
	}
	return false
}
