// Package setup implements the "setup" verb of the fips tool.
//
// The verb takes one positional argument, the SDK name, and hands the fips and
// project directories to the matching sdk.Installer. The table of installers
// is built once in cmd/setup.go:
//
//	d := setup.NewDispatcher(console,
//	    emscripten.New(env),
//	    nacl.New(env),
//	    android.New(env),
//	)
//	err := d.Run(ctx, fipsDir, projDir, args)
//
// Adding an SDK means adding an installer to that list; the dispatcher,
// its help text and its error message pick it up from the installer's Name.
//
// An unknown or missing SDK name is not an error from the caller's point of
// view: the dispatcher prints one error line and returns nil. Failures of an
// installer are returned unchanged.
package setup
