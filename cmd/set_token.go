package cmd

import (
	"fmt"

	"tushare/internal/cli"
	"tushare/internal/config"
)

// setToken stores token in the token file.
func (a *app) setToken(token string) error {
	if token == "" {
		_, err := fmt.Fprintln(a.out, "Please provide a token: tushare set-token <token>")
		return err
	}

	path := config.TokenPath()
	if err := config.SaveToken(path, token); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, cli.FormatSuccess(fmt.Sprintf("Token saved to %s", path)))
	return err
}
