package args

import "tushare/internal/render"

// Param is one operation parameter in the order it appeared on the command line.
type Param struct {
	Key   string
	Value Value
}

// Options holds the global flags understood by the CLI itself.
type Options struct {
	// Format selects the renderer; defaults to the console table.
	Format render.Format
	// Pretty indents JSON output.
	Pretty bool
	// Token overrides the credential from the environment and token file.
	Token string
	// Help is set by --help/-h.
	Help bool
	// Version is set by --version/-v.
	Version bool
}

// DefaultOptions returns the options in effect when no flag is given.
func DefaultOptions() Options {
	return Options{Format: render.FormatTable}
}

// ParsedCommand is the structured form of one invocation.
type ParsedCommand struct {
	// Operation is the remote API name or a builtin (help, list, search, ...).
	Operation string
	// Params are the operation parameters with underscore-separated keys.
	Params []Param
	// Options are the global flags.
	Options Options
	// Positional are the bare tokens after Operation.
	Positional []string
}

// NewParsedCommand returns an empty command with default options.
func NewParsedCommand(operation string) *ParsedCommand {
	return &ParsedCommand{
		Operation: operation,
		Options:   DefaultOptions(),
	}
}

// SetParam records a parameter. A repeated key keeps its original position
// and takes the new value.
func (c *ParsedCommand) SetParam(key string, value Value) {
	for i := range c.Params {
		if c.Params[i].Key == key {
			c.Params[i].Value = value
			return
		}
	}
	c.Params = append(c.Params, Param{Key: key, Value: value})
}

// Param returns the value recorded for key.
func (c *ParsedCommand) Param(key string) (Value, bool) {
	for _, p := range c.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// FirstPositional returns the first positional argument, or "" if there is none.
func (c *ParsedCommand) FirstPositional() string {
	if len(c.Positional) == 0 {
		return ""
	}
	return c.Positional[0]
}

// ParamsMap converts params into the JSON object sent to the API.
// The result is never nil so it always encodes as {}.
func ParamsMap(params []Param) map[string]any {
	out := make(map[string]any, len(params))
	for _, p := range params {
		out[p.Key] = p.Value.JSONValue()
	}
	return out
}
