package cmd

import (
	"context"
	"time"

	"tushare/internal/args"
	"tushare/internal/cli"
	"tushare/internal/client"
	"tushare/internal/config"
	"tushare/internal/render"
	"tushare/pkg/logging"

	"github.com/briandowns/spinner"
)

// fieldsParam is lifted out of the parameters into the request's fields.
const fieldsParam = "fields"

// call invokes the API named by the operation and renders the reply rows.
func (a *app) call(ctx context.Context, parsed *args.ParsedCommand) error {
	token, err := config.ResolveToken(parsed.Options.Token)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(config.ConfigDir())
	if err != nil {
		return err
	}

	a.checkCatalog(parsed.Operation)

	c := client.New(client.Config{
		Endpoint: settings.Endpoint,
		Token:    token,
		Timeout:  settings.Timeout,
	})

	params, fields := splitFields(parsed.Params)
	reply, err := a.await(ctx, c, parsed.Operation, params, fields)
	if err != nil {
		return err
	}

	return render.Render(a.out, reply.Rows(), parsed.Options.Format, parsed.Options.Pretty)
}

// await runs the call asynchronously and keeps a spinner on stderr until the
// result arrives.
func (a *app) await(ctx context.Context, c *client.Client, api string, params []args.Param, fields string) (*client.Reply, error) {
	results := c.CallAsync(ctx, api, params, fields)

	if a.spinner && cli.IsTerminal(a.errOut) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(a.errOut))
		s.Suffix = " Calling " + api + "..."
		s.Start()
		defer s.Stop()
	}

	result := <-results
	return result.Reply, result.Err
}

// checkCatalog logs when the API is not in the catalog. The call is made
// either way.
func (a *app) checkCatalog(api string) {
	cat, err := a.catalog()
	if err != nil {
		logging.Debug("Cmd", "Catalog unavailable: %v", err)
		return
	}
	if _, ok := cat.Find(api); !ok {
		logging.Debug("Cmd", "API %s is not in the catalog, calling it anyway", api)
	}
}

// splitFields removes the fields parameter and returns its value separately.
// A bare --fields (boolean true) is dropped.
func splitFields(params []args.Param) ([]args.Param, string) {
	out := make([]args.Param, 0, len(params))
	fields := ""
	for _, p := range params {
		if p.Key != fieldsParam {
			out = append(out, p)
			continue
		}
		if p.Value.Kind() != args.KindBool {
			fields = p.Value.String()
		}
	}
	return out, fields
}
