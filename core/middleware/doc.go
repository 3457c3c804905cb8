// Package middleware contains HTTP middleware for the Fiber gateway.
//
// # Components
//
//   - auth: API key validation protecting the object routes.
//   - rayid: assigns each request a RayID, stored in the context locals and
//     echoed in the X-Ray-ID response header for tracing.
package middleware
