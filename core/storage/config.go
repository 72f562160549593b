package storage

import (
	"net/url"
	"strings"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds monument images and 360° images.
	Bucket string `mapstructure:"bucket" default:"monuments"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PublicURL is the base URL media links are served from, e.g.
	// https://cdn.example.com/monuments. Links under it map to object keys.
	PublicURL string `mapstructure:"public_url" default:""`
}

// ObjectKey maps a public media URL to its object key in the bucket.
// It reports false for links hosted elsewhere.
func (c Config) ObjectKey(rawURL string) (string, bool) {
	base := strings.TrimRight(c.PublicURL, "/")
	if base == "" || !strings.HasPrefix(rawURL, base+"/") {
		return "", false
	}

	rest := strings.TrimPrefix(rawURL, base+"/")
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	key, err := url.PathUnescape(rest)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}
