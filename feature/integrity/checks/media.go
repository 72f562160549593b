package checks

import (
	"context"

	"monument-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// mediaWorkers bounds concurrent existence lookups.
const mediaWorkers = 8

// MediaReport lists the media links of a monument whose objects are missing.
type MediaReport struct {
	MonumentID string   `json:"monument_id"`
	Checked    int      `json:"checked"`
	Missing    []string `json:"missing"`
	External   []string `json:"external"` // hosted outside the bucket, not checked
	Status     string   `json:"status"`   // "ok", "error"
}

// CheckMedia verifies that every link under the public URL has an object in
// the bucket. Links hosted elsewhere are reported as external.
func CheckMedia(ctx context.Context, client storage.Client, cfg storage.Config, monumentID string, urls []string) (*MediaReport, error) {
	if err := ensureBucket(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}

	report := &MediaReport{
		MonumentID: monumentID,
		Missing:    []string{},
		External:   []string{},
		Status:     "ok",
	}

	type target struct {
		url string
		key string
	}
	var targets []target
	for _, u := range urls {
		key, ok := cfg.ObjectKey(u)
		if !ok {
			report.External = append(report.External, u)
			continue
		}
		targets = append(targets, target{url: u, key: key})
	}

	found := make([]bool, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(mediaWorkers)
	for i, tg := range targets {
		g.Go(func() error {
			found[i] = objectExists(gctx, client, cfg.Bucket, tg.key)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, tg := range targets {
		report.Checked++
		if !found[i] {
			report.Missing = append(report.Missing, tg.url)
			report.Status = "error"
		}
	}
	return report, nil
}

// objectExists looks the key up with a single-key listing.
func objectExists(ctx context.Context, client storage.Client, bucket, key string) bool {
	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		return obj.Err == nil && obj.Key == key
	}
	return false
}
