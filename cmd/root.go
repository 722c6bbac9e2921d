package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tushare/internal/args"
	"tushare/internal/cli"
	"tushare/internal/client"
	"tushare/internal/config"
	"tushare/internal/render"
	"tushare/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution, including builtins.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a transport or otherwise unclassified failure.
	ExitCodeError = 1
	// ExitCodeParse indicates malformed command-line input.
	ExitCodeParse = 2
	// ExitCodeCredentialMissing indicates no API token could be resolved.
	ExitCodeCredentialMissing = 3
	// ExitCodeRemote indicates the API rejected the call.
	ExitCodeRemote = 4
	// ExitCodeOutput indicates the result could not be written.
	ExitCodeOutput = 5
)

// rootCmd is the only cobra command. Flag parsing is disabled so the raw
// arguments reach args.Parse, which knows how to tell global options from
// operation parameters.
var rootCmd = &cobra.Command{
	Use:   "tushare <api> [options] [--param value ...]",
	Short: "Query the Tushare Pro financial data API",
	Long: `tushare calls Tushare Pro data APIs from the command line and prints
the result as a table, CSV, JSON or Markdown.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	// RunE reaches the version builtin, which reads rootCmd, so it is
	// assigned here rather than in the literal.
	rootCmd.RunE = runRoot
}

func runRoot(cmd *cobra.Command, argv []string) error {
	logging.InitFromEnv(cmd.ErrOrStderr())
	return newApp(cmd.OutOrStdout(), cmd.ErrOrStderr()).run(cmd.Context(), argv)
}

// SetVersion sets the version reported by the version builtin.
// It is called from the main package with the value injected at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code describing the outcome.
// Errors are printed once here; nothing reaches stdout on failure.
func Execute() {
	cli.ConfigureColors(os.Stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps an error to its exit status for scripting.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var parseErr *args.ParseError
	if errors.As(err, &parseErr) {
		return ExitCodeParse
	}

	var missing *config.CredentialMissingError
	if errors.As(err, &missing) {
		return ExitCodeCredentialMissing
	}

	var remote *client.RemoteError
	if errors.As(err, &remote) {
		return ExitCodeRemote
	}

	var output *render.OutputError
	if errors.As(err, &output) {
		return ExitCodeOutput
	}

	return ExitCodeError
}

// printError writes err and any remediation lines it carries.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, cli.FormatError(err))

	var hints []string
	var (
		missing   *config.CredentialMissingError
		remote    *client.RemoteError
		transport *client.TransportError
	)
	switch {
	case errors.As(err, &missing):
		hints = append([]string{"To configure a token, either:"}, prefixAll("  - ", missing.Remediation())...)
	case errors.As(err, &remote):
		hints = remote.Hints()
	case errors.As(err, &transport):
		hints = transport.Hints()
	}

	if len(hints) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, h := range hints {
		fmt.Fprintln(w, cli.FormatHint(h))
	}
}

func prefixAll(prefix string, lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = prefix + l
	}
	return out
}
