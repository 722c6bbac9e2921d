// Package logging provides structured logging for the tushare CLI.
//
// It wraps Go's standard slog package with a subsystem-tagged API so every
// record says which part of the pipeline produced it:
//
//	logging.InitFromEnv(os.Stderr)
//	logging.Debug("Client", "POST %s (request id %s)", endpoint, id)
//	logging.Warn("Logging", "ignoring invalid %s=%q", LevelEnvVar, value)
//
// # Levels
//
// Records below the configured level are dropped before formatting. The level
// is taken from TUSHARE_LOG_LEVEL (debug, info, warn, error) and defaults to
// WARN, so a normal invocation writes nothing but its rendered output.
//
// # Output
//
// Logs always go to the writer passed at initialization (stderr in the CLI),
// never to stdout, which is reserved for rendered data.
package logging
