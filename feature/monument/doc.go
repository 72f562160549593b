// Package monument implements the monument review feature.
//
// It loads a monument and its associations with GORM, converts them into a
// reconcile.Snapshot and runs the diff engine against a proposed update, either
// posted directly or stored as a user suggestion.
//
// # Components
//
//   - Repository: Loads monuments and suggestions; changes suggestion status.
//   - Service: Caches snapshots per monument and builds reviews.
//   - Handler: Exposes the review and moderation endpoints.
//   - Loader: Registers the feature with the application.
//
// # Moderation
//
// Approving or rejecting a suggestion only changes its status. Only pending
// suggestions can be moderated; anything else yields ErrSuggestionClosed.
//
// # HTTP Endpoints
//
//   - POST /monuments/:id/diff : Review a proposed update (?all, ?unchanged, ?mode).
//   - GET /suggestions/:id/diff : Review a stored suggestion.
//   - POST /suggestions/:id/approve : Approve a pending suggestion.
//   - POST /suggestions/:id/reject : Reject a pending suggestion.
package monument
