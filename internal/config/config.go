// Package config handles pipeline configuration. Values come from the
// environment; a .env file in the working directory is loaded automatically
// by the godotenv autoload import in main.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the remote storage settings for the upload step.
//
// Fields:
//   - S3Bucket / S3Region: object storage location.
//   - S3AccessKey / S3SecretKey: static credentials.
//   - S3Endpoint: optional custom endpoint for S3-compatible backends.
//   - PublicBaseURL: optional CDN host prefixed to uploaded keys; falls
//     back to the bucket's own URL when empty.
type Config struct {
	S3Bucket      string
	S3Region      string
	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string
	PublicBaseURL string
}

// FromEnv reads the configuration. Missing required values are a fatal
// startup error: the upload step must not begin partial work without
// credentials.
func FromEnv() (*Config, error) {
	cfg := &Config{
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      os.Getenv("S3_REGION"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}

	var missing []string
	if cfg.S3Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if cfg.S3AccessKey == "" {
		missing = append(missing, "S3_ACCESS_KEY")
	}
	if cfg.S3SecretKey == "" {
		missing = append(missing, "S3_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
