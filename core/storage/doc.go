// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to hold monument images and 360° images. The
// same client talks to AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider so storage
// interactions can be mocked in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket if needed.
//   - PutObject: Uploads content (used for prefix placeholders).
//   - ListObjects: Lists objects (supports prefix/recursive).
//
// # Public URLs
//
// Media rows store public links. Config.ObjectKey maps a link under
// PublicURL back to its object key so existence can be verified.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
//	key, ok := cfg.Storage.ObjectKey("https://cdn.example.com/monuments/images/front.jpg")
package storage
