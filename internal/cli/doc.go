// Package cli provides the terminal helpers shared by the tushare builtins.
//
// PlainTableWriter lays out catalog listings in aligned, borderless columns
// that stay easy to grep and cut. The message helpers give errors, warnings
// and hints a consistent prefix and color on stderr.
//
// Colors come from go-pretty's text package and are switched off when the
// target is not a terminal (see ConfigureColors).
package cli
