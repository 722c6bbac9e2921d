package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"tushare/internal/args"
	"tushare/internal/catalog"
	"tushare/internal/cli"
	"tushare/internal/config"
	"tushare/internal/render"
	"tushare/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const generalHelp = `tushare - query the Tushare Pro financial data API

Usage:
  tushare <api> [options] [--param value ...]
  tushare <command> [arguments]

Commands:
  help [api]              show this help, or the details of one API
  version                 show version information
  list, ls [category]     list API categories, or the APIs of one category
  search <keyword>        search APIs by name and description
  set-token <token>       store the API token in the token file

Options:
  -f, --format <format>   output format (%s), default table
  -p, --pretty            indent JSON output
  -t, --token <token>     API token, overrides %s and the token file
  -h, --help              show help
  -v, --version           show version information

Parameters:
  --name value            API parameter; hyphens become underscores (--ts-code -> ts_code)
  --name=value            API parameter in equals form
  --name                  boolean parameter set to true (last argument only)
  --fields a,b            restrict the returned columns

Examples:
  tushare stock_basic --ts-code 000001.SZ
  tushare daily --ts-code 000001.SZ --start-date 20240101
  tushare daily --ts-code 000001.SZ --format json --pretty
  tushare list stock
  tushare help daily
  tushare search index

Environment:
  %-24s API token
  %-24s token file (default ~/.tushare/token.txt)
  %-24s API endpoint (default %s)
  %-24s log level: debug, info, warn, error (default warn)

More information: https://tushare.pro
`

// help prints general usage, or the catalog entry for name.
func (a *app) help(name string) error {
	if name == "" || name == builtinHelp {
		_, err := fmt.Fprintf(a.out, generalHelp,
			render.FormatNames(), config.EnvToken,
			config.EnvToken, config.EnvConfigPath, config.EnvAPIURL, config.DefaultEndpoint, logging.LevelEnvVar)
		return err
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}

	def, ok := cat.Find(name)
	if !ok {
		_, err := fmt.Fprintf(a.out, "%s\n\n"+
			"Run 'tushare list' to see all APIs\n"+
			"Run 'tushare search <keyword>' to search APIs\n",
			cli.FormatWarning("API not found: "+name))
		return err
	}

	_, err = fmt.Fprint(a.out, formatDefinition(def))
	return err
}

func formatDefinition(def *catalog.Definition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "API:         %s\n", def.Name)
	fmt.Fprintf(&sb, "Description: %s\n", def.Description)
	fmt.Fprintf(&sb, "Category:    %s (%s)\n", def.Category, catalog.CategoryTitle(def.Category))
	if def.RequiresPoints != nil {
		fmt.Fprintf(&sb, "Points:      %d\n", *def.RequiresPoints)
	}

	sb.WriteString("\nParameters:\n")
	if len(def.Parameters) == 0 {
		sb.WriteString("  (none)\n")
	} else {
		t := newHelpTable()
		t.AppendHeader(table.Row{"parameter", "type", "required", "description"})
		for _, p := range def.Parameters {
			required := "optional"
			if p.Required {
				required = "required"
			}
			t.AppendRow(table.Row{"--" + args.KeyToKebab(p.Name), p.Type, required, p.Description})
		}
		sb.WriteString(t.Render())
		sb.WriteString("\n")
	}

	sb.WriteString("\nOutput fields:\n")
	if len(def.OutputFields) == 0 {
		sb.WriteString("  (none)\n")
	} else {
		t := newHelpTable()
		t.AppendHeader(table.Row{"field", "type", "default", "description"})
		for _, f := range def.OutputFields {
			shown := ""
			if f.DefaultShow {
				shown = "*"
			}
			t.AppendRow(table.Row{f.Name, f.Type, shown, f.Description})
		}
		sb.WriteString(t.Render())
		sb.WriteString("\n  (* returned by default)\n")
	}

	if len(def.Parameters) > 0 {
		fmt.Fprintf(&sb, "\nExample:\n  %s\n", exampleInvocation(def))
	}
	if def.DocID > 0 {
		fmt.Fprintf(&sb, "\nDocumentation: https://tushare.pro/document/2?doc_id=%s\n", strconv.Itoa(def.DocID))
	}
	return sb.String()
}

func newHelpTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatUpper
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	return t
}

// exampleInvocation shows the required parameters, or the first parameter
// when none is required.
func exampleInvocation(def *catalog.Definition) string {
	params := def.RequiredParameters()
	if len(params) == 0 {
		params = def.Parameters[:1]
	}

	parts := []string{"tushare", def.Name}
	for _, p := range params {
		parts = append(parts, "--"+args.KeyToKebab(p.Name), "<"+p.Name+">")
	}
	return strings.Join(parts, " ")
}
