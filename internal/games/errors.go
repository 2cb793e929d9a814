package games

// ErrorKind classifies engine failures for the host surface.
type ErrorKind int

const (
	// KindNotFound covers unknown tables, unknown players, and wrong game
	// type for a table.
	KindNotFound ErrorKind = iota
	// KindValidation covers out-of-range bets, insufficient funds, and
	// actions without an active hand.
	KindValidation
	// KindUnrecognized covers unknown action strings and game type tags.
	KindUnrecognized
	// KindInternal covers gateway failures.
	KindInternal
)

// Error is the structured failure result every engine operation reports.
// The engine never panics on bad input.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func unrecognized(message string) *Error {
	return &Error{Kind: KindUnrecognized, Message: message}
}

func internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}
