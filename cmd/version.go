package cmd

import (
	"fmt"
	"runtime"
)

// version prints the build version, the Go runtime and the license.
func (a *app) version() error {
	v := GetVersion()
	if v == "" {
		v = "dev"
	}

	_, err := fmt.Fprintf(a.out, "tushare version %s\n"+
		"go version %s %s/%s\n\n"+
		"Licensed under the MIT License\n"+
		"Tushare Pro: https://tushare.pro\n",
		v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}
