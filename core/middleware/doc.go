// Package middleware groups the HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the review endpoints.
//   - rayid: assigns every request a RayID, stored in the context and echoed in
//     the response headers for tracing.
//
// Both are registered globally in the start command.
package middleware
