package models

// DefaultGreeting is used when --greeting is not given.
const DefaultGreeting = "Hello"

// ParsedArguments is the result of interpreting one command line.
// Name may be empty: the grammar requires it to be present, not non-empty.
type ParsedArguments struct {
	Name     string
	Greeting string
	Caps     bool
}

// NewParsedArguments returns arguments for name with the default greeting.
func NewParsedArguments(name string) ParsedArguments {
	return ParsedArguments{
		Name:     name,
		Greeting: DefaultGreeting,
	}
}
