// Package check validates preconditions and reports failures with messages
// that embed the failing expression's source form and operand values.
//
// Go has no macro layer to capture expression source text, so callers
// describe the expression explicitly with small builders before evaluation:
//
//	// a < b < c
//	err := check.Arg(check.Compare(
//	    check.Var("a", a), check.Less,
//	    check.Var("b", b), check.Less,
//	    check.Var("c", c),
//	))
//
// A chained comparison holds iff every adjacent pair compares true; on
// failure only the first failing pair is reported, with the names and
// runtime values of its bound operands:
//
//	b < c must hold. Got: b => 1.34, c => -345.234.
//
// Predicate calls report the callee and its arguments:
//
//	err := check.Arg(check.Predicate("issorted", issorted(xs), check.Var("xs", xs)))
//	// issorted(xs) must hold. Got: xs => [3 1 2]. Result: false.
//
// Anything else goes through check.Bool, which produces a generic message.
//
// Arg and That differ only in their default error kind: Arg wraps
// backstop.ErrArgument, That wraps backstop.ErrCheckFailed. Callers can
// substitute a message (WithMessage), an error kind (WithKind), or a fully
// constructed error instance (WithError, which bypasses message
// construction entirely).
package check
