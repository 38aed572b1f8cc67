package config

// EnvConfig holds the ambient settings read from the environment.
// None of them change the grammar of the command line.
type EnvConfig struct {
	// One of: debug, info, warn, error.
	LogLevel string `env:"GREET_LOG_LEVEL" default:"warn" validate:"omitempty,oneof=debug info warn error"`
	// Disables colored diagnostics and log output.
	NoColor bool `env:"GREET_NO_COLOR"`
	// Conventional switches honoured as well: any NO_COLOR value, TERM=dumb.
	NoColorConvention string `env:"NO_COLOR"`
	Term              string `env:"TERM"`

	// POSIX locale variables, in precedence order. Only used to pick
	// the case mapping rules for --caps.
	LCAll   string `env:"LC_ALL"`
	LCCtype string `env:"LC_CTYPE"`
	Lang    string `env:"LANG"`
}
