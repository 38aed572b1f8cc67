// Package greeting builds and prints the greeting line.
package greeting

import (
	"fmt"
	"io"

	"github.com/sandrolain/greet/src/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter turns parsed arguments into the printed greeting.
type Formatter struct {
	tag language.Tag
}

// New creates a Formatter that uppercases using the case rules of tag.
// language.Und gives locale-neutral Unicode case mapping.
func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// Format returns "<greeting>, <name>!", uppercased as a whole when Caps is set.
func (f *Formatter) Format(args models.ParsedArguments) string {
	out := args.Greeting + ", " + args.Name + "!"
	if args.Caps {
		// Casers keep state, so one per call.
		out = cases.Upper(f.tag).String(out)
	}
	return out
}

// Greet writes the formatted greeting and a trailing newline to w.
func (f *Formatter) Greet(w io.Writer, args models.ParsedArguments) error {
	if _, err := fmt.Fprintln(w, f.Format(args)); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
