package check

import "github.com/vvka-141/backstop/pkg/backstop"

// Kind constructs errors of a particular classification from a message.
// Custom error kinds implement this to plug into Arg/That via WithKind.
type Kind interface {
	// New builds the error carrying msg. An empty msg asks for the kind's
	// bare form.
	New(msg string) error
}

// Built-in kinds. Errors they construct match the corresponding sentinel in
// pkg/backstop under errors.Is.
var (
	// ArgumentKind is the default kind raised by Arg.
	ArgumentKind Kind = sentinelKind{backstop.ErrArgument}

	// CheckKind is the default kind raised by That.
	CheckKind Kind = sentinelKind{backstop.ErrCheckFailed}

	// DimensionMismatchKind reports operands of incompatible shape.
	DimensionMismatchKind Kind = sentinelKind{backstop.ErrDimensionMismatch}
)

type sentinelKind struct {
	sentinel error
}

func (k sentinelKind) New(msg string) error {
	if msg == "" {
		return k.sentinel
	}
	return &kindError{kind: k.sentinel, msg: msg}
}

// kindError carries the constructed message verbatim while remaining
// errors.Is-matchable against its kind's sentinel.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}
