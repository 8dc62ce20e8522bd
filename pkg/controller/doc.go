// Package controller contains HTTP middlewares and helpers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context,
//     echoes the ID in the X-Request-Id response header and logs access info.
//
// Profiling endpoints are served by chi's middleware.Profiler, mounted by the api package.
package controller
