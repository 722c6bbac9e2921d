package cmd

import (
	"context"
	"io"

	"tushare/internal/args"
	"tushare/internal/catalog"
)

// Builtin command names. Any other operation is sent to the API.
const (
	builtinHelp     = args.CommandHelp
	builtinVersion  = args.CommandVersion
	builtinList     = "list"
	builtinListAlt  = "ls"
	builtinSearch   = "search"
	builtinSetToken = "set-token"
)

// catalogLoader is shared by every app in the process.
var catalogLoader = catalog.Default

// app carries the writers and shared state of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer
	// catalog returns the process-wide operation catalog, loading it on first use.
	catalog func() (*catalog.Catalog, error)
	// spinner enables the progress indicator during API calls.
	spinner bool
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:     out,
		errOut:  errOut,
		catalog: catalogLoader,
		spinner: true,
	}
}

// run parses argv and dispatches to a builtin or an API call.
func (a *app) run(ctx context.Context, argv []string) error {
	parsed, err := args.Parse(argv)
	if err != nil {
		return err
	}

	switch parsed.Operation {
	case builtinHelp:
		return a.help(parsed.FirstPositional())
	case builtinVersion:
		return a.version()
	case builtinList, builtinListAlt:
		return a.list(parsed.FirstPositional())
	case builtinSearch:
		return a.search(parsed.FirstPositional())
	case builtinSetToken:
		return a.setToken(parsed.FirstPositional())
	}

	if parsed.Options.Help {
		return a.help(parsed.Operation)
	}
	return a.call(ctx, parsed)
}
