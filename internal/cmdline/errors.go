package cmdline

import "errors"

var (
	// ErrHelp is returned after the usage text was printed on request.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned after the version text was printed on request.
	ErrVersion = errors.New("version requested")
)

// UsageError reports a command line that cannot be applied. The message
// has already been printed to the parser's output.
type UsageError struct {
	// Arg is the offending argument as given.
	Arg string

	// Message is the text shown to the user.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
