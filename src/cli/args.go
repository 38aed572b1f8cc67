package cli

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// normalizeArgs prepares raw arguments for pflag:
//   - unique prefixes of long flags are expanded (--greet=Hi -> --greeting=Hi)
//   - a value flag given as a separate token must not be followed by
//     something that looks like a flag (--greeting --caps is an error)
//
// Everything after "--" is passed through untouched. Unknown flags are
// left for pflag to report.
func normalizeArgs(fs *pflag.FlagSet, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...), nil
		}
		if !strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		if name == "" {
			out = append(out, arg)
			continue
		}
		flag, err := lookupLong(fs, name)
		if err != nil {
			return nil, err
		}
		if flag == nil {
			out = append(out, arg)
			continue
		}

		full := "--" + flag.Name
		if hasValue {
			out = append(out, full+"="+value)
			continue
		}
		out = append(out, full)

		// bool flags carry a NoOptDefVal and never consume the next token
		if flag.NoOptDefVal != "" || i+1 >= len(args) {
			continue
		}
		next := args[i+1]
		if looksLikeFlag(next) {
			return nil, &ArgumentError{Err: fmt.Errorf("flag needs an argument: %s", full)}
		}
		out = append(out, next)
		i++
	}
	return out, nil
}

// lookupLong returns the flag named name or the only flag name has as a prefix.
// It returns nil when nothing matches.
func lookupLong(fs *pflag.FlagSet, name string) (*pflag.Flag, error) {
	if f := fs.Lookup(name); f != nil {
		return f, nil
	}
	var matches []*pflag.Flag
	fs.VisitAll(func(f *pflag.Flag) {
		if strings.HasPrefix(f.Name, name) {
			matches = append(matches, f)
		}
	})
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}
	names := make([]string, 0, len(matches))
	for _, f := range matches {
		names = append(names, "--"+f.Name)
	}
	sort.Strings(names)
	return nil, &ArgumentError{Err: fmt.Errorf("ambiguous flag: --%s could match %s", name, strings.Join(names, ", "))}
}

func looksLikeFlag(s string) bool {
	return len(s) > 1 && strings.HasPrefix(s, "-") && !negativeNumber.MatchString(s)
}
