// Package devserver serves a directory over HTTP for local development.
//
// It is the Go form of the fips "serve" helper: bind localhost:8000 with
// address reuse, print where to point the browser, serve files until the
// context is cancelled, then release the socket and print a stop notice.
//
// Static file semantics come from Fiber's static handler: index.html
// resolution, directory listings, 404 for missing paths. Requests are handled
// one at a time and every response is marked uncacheable.
//
// The caller owns cancellation:
//
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
//	defer stop()
//	err := devserver.New(cfg.Server, console, logg).Run(ctx)
package devserver
