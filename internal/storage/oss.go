package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/rs/zerolog"
)

// ErrUnsupportedType is returned before any store interaction when an
// upload's content type is outside the accepted set.
var ErrUnsupportedType = errors.New("unsupported content type: accepted types are PNG, JPEG and PDF")

// allowedContentTypes is the exact set of accepted upload types.
var allowedContentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"application/pdf": true,
}

// Allowed reports whether a content type may be uploaded.
func Allowed(contentType string) bool {
	return allowedContentTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// ObjectStorage uploads binary answer assets and returns a public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// OSSClient stores objects in an Alibaba Cloud OSS bucket.
type OSSClient struct {
	bucket     *oss.Bucket
	publicBase string
	log        zerolog.Logger
}

// NewOSS connects to the configured bucket.
func NewOSS(cfg *config.StorageConfig, log zerolog.Logger) (*OSSClient, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint)
	}

	return &OSSClient{
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		log:        log.With().Str("component", "storage").Logger(),
	}, nil
}

// Upload writes the object and returns its public URL. The content type is
// checked before the bucket is touched.
func (c *OSSClient) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if !Allowed(contentType) {
		return "", ErrUnsupportedType
	}

	key = strings.TrimLeft(key, "/")
	if err := c.bucket.PutObject(key, r, oss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	url := c.publicBase + "/" + key
	c.log.Info().Str("key", key).Str("content_type", contentType).Msg("Object uploaded")
	return url, nil
}
