// Package catalog holds the built-in descriptions of the Tushare Pro
// operations.
//
// The definitions are embedded in the binary as JSON and parsed once per
// process. A loaded Catalog is immutable; the help, list and search builtins
// receive it by pointer and only read from it.
//
// The catalog is informational. Operation calls are never validated against
// it, so an API missing from the catalog can still be invoked.
package catalog
