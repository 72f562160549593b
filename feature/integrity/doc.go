// Package integrity provides storage and schema health checks for the catalog.
//
// # Checks Provided
//
//   - Structure: Checks that the media folders (images/, photo-spheres/) exist
//     in the storage bucket, and can create them.
//   - Schema: Validates that the connected database matches the catalog models
//     (columns, types).
//   - Media: Verifies that every stored image and 360° image link of a monument
//     resolves to an object in the bucket.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs the structure and schema checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/media/:id : Runs the media check for one monument.
package integrity
