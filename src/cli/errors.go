package cli

// ArgumentError reports a command line that does not match the grammar:
// missing or extra positionals, unknown flags, or a flag without its value.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return "invalid arguments: " + e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
