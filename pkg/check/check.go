package check

// Option adjusts how a failed check is turned into an error.
type Option func(*settings)

type settings struct {
	message    string
	hasMessage bool
	kind       Kind
	instance   error
}

// WithMessage replaces the auto-constructed message with msg verbatim.
// No expression decomposition happens.
func WithMessage(msg string) Option {
	return func(s *settings) {
		s.message = msg
		s.hasMessage = true
	}
}

// WithKind raises the given kind instead of the entry point's default,
// still auto-constructing the message.
func WithKind(k Kind) Option {
	return func(s *settings) {
		s.kind = k
	}
}

// WithError raises the given error instance verbatim on failure, bypassing
// message construction entirely. Takes precedence over WithMessage and
// WithKind.
func WithError(err error) Option {
	return func(s *settings) {
		s.instance = err
	}
}

// Arg validates a precondition on a function argument. It returns nil when
// the expression holds, and otherwise an invalid-argument error carrying a
// descriptive message built from the expression's form.
func Arg(e Expression, opts ...Option) error {
	return run(e, ArgumentKind, opts)
}

// That validates a general precondition. Identical to Arg except the
// default error kind is the generic check-failure kind.
func That(e Expression, opts ...Option) error {
	return run(e, CheckKind, opts)
}

func run(e Expression, defaultKind Kind, opts []Option) error {
	result := e.eval()
	if result.ok {
		return nil
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.instance != nil {
		return s.instance
	}

	kind := defaultKind
	if s.kind != nil {
		kind = s.kind
	}

	msg := result.message
	if s.hasMessage {
		msg = s.message
	}
	return kind.New(msg)
}
