package check

import (
	"fmt"
	"strings"
)

// Operand is one value position inside a checked expression: its rendered
// source text, its runtime value, and whether the source is a bound
// identifier (as opposed to a literal).
type Operand struct {
	source string
	value  interface{}
	named  bool
}

// Var describes a bound identifier operand. Its name and runtime value are
// reported in failure messages.
func Var(name string, value interface{}) Operand {
	return Operand{source: name, value: value, named: true}
}

// Lit describes a literal operand. Only its source text appears in failure
// messages, never a name/value pair.
func Lit(source string, value interface{}) Operand {
	return Operand{source: source, value: value, named: false}
}

// Operator is a comparison operator inside a chained comparison.
type Operator int

const (
	Less Operator = iota
	LessEq
	Greater
	GreaterEq
	Eq
	NotEq
)

func (op Operator) String() string {
	switch op {
	case Less:
		return "<"
	case LessEq:
		return "<="
	case Greater:
		return ">"
	case GreaterEq:
		return ">="
	case Eq:
		return "=="
	case NotEq:
		return "!="
	}
	return "?"
}

// Expression is a boolean expression form the evaluator can decompose.
// Exactly one of the three variants (Bool, Compare, Predicate) describes
// any given expression. Expressions are transient: built immediately before
// a check and discarded afterwards.
type Expression interface {
	eval() outcome
}

// outcome is the result of evaluating an expression: whether it held, and
// on falsity the constructed failure message.
type outcome struct {
	ok      bool
	message string
}

// Bool describes a plain boolean expression. Failure messages state the
// source text and that it evaluated false, with no operand decomposition.
func Bool(source string, value bool) Expression {
	return simpleExpr{source: source, value: value}
}

type simpleExpr struct {
	source string
	value  bool
}

func (e simpleExpr) eval() outcome {
	if e.value {
		return outcome{ok: true}
	}
	return outcome{message: genericMessage(e.source)}
}

func genericMessage(source string) string {
	return fmt.Sprintf("%s must hold, but evaluated to false.", source)
}

// Compare describes a chained comparison such as a < b < c. parts must
// alternate Operand and Operator, starting and ending with an Operand, with
// at least one Operator. The chain holds iff every adjacent pair compares
// true, evaluated left to right.
//
// A malformed parts list or incomparable operand pair degrades to the
// generic failure form rather than panicking.
func Compare(parts ...interface{}) Expression {
	e := comparisonExpr{}
	if len(parts) < 3 || len(parts)%2 == 0 {
		return invalidComparison(parts)
	}
	for i, part := range parts {
		if i%2 == 0 {
			operand, isOperand := part.(Operand)
			if !isOperand {
				return invalidComparison(parts)
			}
			e.operands = append(e.operands, operand)
		} else {
			op, isOp := part.(Operator)
			if !isOp {
				return invalidComparison(parts)
			}
			e.ops = append(e.ops, op)
		}
	}
	return e
}

// invalidComparison renders whatever the caller handed in and fails with
// the generic form.
func invalidComparison(parts []interface{}) Expression {
	srcs := make([]string, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case Operand:
			srcs = append(srcs, p.source)
		case Operator:
			srcs = append(srcs, p.String())
		default:
			srcs = append(srcs, fmt.Sprintf("%v", p))
		}
	}
	return simpleExpr{source: strings.Join(srcs, " ")}
}

type comparisonExpr struct {
	operands []Operand
	ops      []Operator
}

func (e comparisonExpr) eval() outcome {
	for i, op := range e.ops {
		lhs, rhs := e.operands[i], e.operands[i+1]

		held, comparable := compareValues(lhs.value, op, rhs.value)
		if !comparable {
			return outcome{message: genericMessage(e.source())}
		}
		if !held {
			return outcome{message: pairMessage(lhs, op, rhs)}
		}
	}
	return outcome{ok: true}
}

func (e comparisonExpr) source() string {
	var sb strings.Builder
	for i, operand := range e.operands {
		if i > 0 {
			sb.WriteString(" " + e.ops[i-1].String() + " ")
		}
		sb.WriteString(operand.source)
	}
	return sb.String()
}

// pairMessage reports only the adjacent pair whose comparison first failed.
// Named operands contribute name => value pairs; literals appear in the
// source form only.
func pairMessage(lhs Operand, op Operator, rhs Operand) string {
	msg := fmt.Sprintf("%s %s %s must hold.", lhs.source, op, rhs.source)
	got := gotPairs([]Operand{lhs, rhs})
	if got != "" {
		msg += " Got: " + got + "."
	}
	return msg
}

func gotPairs(operands []Operand) string {
	pairs := make([]string, 0, len(operands))
	for _, operand := range operands {
		if operand.named {
			pairs = append(pairs, fmt.Sprintf("%s => %v", operand.source, operand.value))
		}
	}
	return strings.Join(pairs, ", ")
}

// Predicate describes a boolean call form f(a, b, ...). result is the
// call's already-computed value. Failure messages name the callee, render
// every argument's source text, report values for bound-identifier
// arguments, and end with a "Result: false." marker whenever at least one
// argument value was reportable.
func Predicate(callee string, result bool, args ...Operand) Expression {
	return callExpr{callee: callee, result: result, args: args}
}

type callExpr struct {
	callee string
	result bool
	args   []Operand
}

func (e callExpr) eval() outcome {
	if e.result {
		return outcome{ok: true}
	}

	srcs := make([]string, len(e.args))
	for i, arg := range e.args {
		srcs[i] = arg.source
	}
	msg := fmt.Sprintf("%s(%s) must hold.", e.callee, strings.Join(srcs, ", "))

	if got := gotPairs(e.args); got != "" {
		msg += " Got: " + got + ". Result: false."
	}
	return outcome{message: msg}
}
