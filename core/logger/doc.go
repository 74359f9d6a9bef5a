// Package logger provides the two output channels of the fips tool.
//
// # Structured logging
//
// New builds a zap logger from Config. Console encoding (the default for a CLI)
// uses capitalised, colored levels; json encoding is available for CI runs.
// WithRayID attaches the request id set by the rayid middleware so dev server
// request logs can be correlated.
//
// # Console
//
// Console is the user-facing sink: Info, Warn, Error and Colored, with colors
// rendered through lipgloss. Color detection follows the destination writer
// unless Config.Color forces it on or off.
//
// # Usage
//
//	l, _ := logger.New(&cfg.Log)
//	con := logger.NewStdConsole(cfg.Log.Color)
//	con.Colored(logger.Green, "done.")
//	con.Error("invalid SDK name")
package logger
