// Package middleware contains HTTP middleware for the Fiber dev server.
//
// # Components
//
//   - RayID: tags every request with a unique id (X-Ray-ID), stored in the
//     context for logger.WithRayID and echoed in the response headers.
package middleware
