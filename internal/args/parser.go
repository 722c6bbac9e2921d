package args

import (
	"fmt"
	"strings"

	"tushare/internal/render"
)

const (
	// CommandHelp is the builtin selected when no operation is given.
	CommandHelp = "help"
	// CommandVersion is selected by --version without an operation.
	CommandVersion = "version"
)

// ParseError reports malformed command-line input.
type ParseError struct {
	// Reason is a human-readable description of the problem.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Reason
}

// Is allows errors.Is() to match any ParseError.
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// KebabToKey folds a hyphen-separated flag name into the underscore form the
// API expects ("ts-code" -> "ts_code").
func KebabToKey(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// KeyToKebab is the display inverse of KebabToKey ("ts_code" -> "ts-code").
func KeyToKebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// Parse converts argv (without the program name) into a ParsedCommand.
//
// The first bare token is the operation, later bare tokens are positional.
// --help, --version, --format, --pretty and --token (and their short forms
// -h, -v, -f, -p, -t) are global options; every other --name is an operation
// parameter given as "--name value", "--name=value" or a trailing "--name"
// meaning true. Unknown short options are ignored.
func Parse(argv []string) (*ParsedCommand, error) {
	cmd := NewParsedCommand("")

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		// next consumes the following token as an option value.
		next := func() (string, bool) {
			if i+1 < len(argv) {
				i++
				return argv[i], true
			}
			return "", false
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			switch name {
			case "help":
				cmd.Options.Help = true
			case "version":
				cmd.Options.Version = true
			case "pretty":
				cmd.Options.Pretty = true
			case "format":
				if v, ok := next(); ok {
					if err := setFormat(&cmd.Options, v); err != nil {
						return nil, err
					}
				}
			case "token":
				if v, ok := next(); ok {
					cmd.Options.Token = v
				}
			default:
				if key, value, found := strings.Cut(name, "="); found {
					if key != "" {
						cmd.SetParam(KebabToKey(key), Coerce(value))
					}
					continue
				}
				if name == "" {
					continue
				}
				if i+1 < len(argv) {
					// A following option means this one has no value; it is dropped.
					if !strings.HasPrefix(argv[i+1], "-") {
						v, _ := next()
						cmd.SetParam(KebabToKey(name), Coerce(v))
					}
					continue
				}
				cmd.SetParam(KebabToKey(name), BoolValue(true))
			}

		case strings.HasPrefix(arg, "-"):
			if len(arg) < 2 {
				continue
			}
			switch arg[1] {
			case 'h':
				cmd.Options.Help = true
			case 'v':
				cmd.Options.Version = true
			case 'p':
				cmd.Options.Pretty = true
			case 'f':
				if v, ok := next(); ok {
					if err := setFormat(&cmd.Options, v); err != nil {
						return nil, err
					}
				}
			case 't':
				if v, ok := next(); ok {
					cmd.Options.Token = v
				}
			}

		default:
			if cmd.Operation == "" {
				cmd.Operation = arg
			} else {
				cmd.Positional = append(cmd.Positional, arg)
			}
		}
	}

	if cmd.Operation == "" {
		if cmd.Options.Version {
			cmd.Operation = CommandVersion
		} else {
			cmd.Operation = CommandHelp
		}
	}

	return cmd, nil
}

func setFormat(opts *Options, value string) error {
	format, ok := render.ParseFormat(value)
	if !ok {
		return &ParseError{Reason: fmt.Sprintf("invalid output format: %q (valid: %s)", value, render.FormatNames())}
	}
	opts.Format = format
	return nil
}
