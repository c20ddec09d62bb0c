package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Stager writes local files to a bucket and hands out presigned URLs the
// remote content store can fetch them from.
type Stager struct {
	client Client
	bucket string
	prefix string
	expiry time.Duration
	logger *zap.Logger

	once      sync.Once
	bucketErr error
}

// NewStager creates a stager for the configured bucket.
func NewStager(client Client, cfg Config, logger *zap.Logger) *Stager {
	expiry := time.Duration(cfg.PresignExpirySeconds) * time.Second
	if expiry <= 0 {
		expiry = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stager{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		expiry: expiry,
		logger: logger,
	}
}

// EnsureBucket creates the bucket when it does not exist yet. It runs once per
// stager; later calls return the first result.
func (s *Stager) EnsureBucket(ctx context.Context) error {
	s.once.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.bucketErr = fmt.Errorf("checking bucket %s: %w", s.bucket, err)
			return
		}
		if exists {
			return
		}
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			s.bucketErr = fmt.Errorf("creating bucket %s: %w", s.bucket, err)
			return
		}
		s.logger.Info("Created staging bucket", zap.String("bucket", s.bucket))
	})
	return s.bucketErr
}

// ObjectName maps a local path to its object name under the prefix.
func (s *Stager) ObjectName(key string) string {
	clean := strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(key, "\\", "/")), "/")
	if s.prefix == "" {
		return clean
	}
	return path.Join(s.prefix, clean)
}

// Stage uploads the content of r and returns a presigned download URL.
func (s *Stager) Stage(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return "", err
	}

	object := s.ObjectName(key)
	info, err := s.client.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", object, err)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, object, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", object, err)
	}

	s.logger.Debug("Staged file",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int64("size", info.Size))
	return u.String(), nil
}

// Release removes a staged object once the remote store has copied it.
func (s *Stager) Release(ctx context.Context, key string) error {
	object := s.ObjectName(key)
	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %s: %w", object, err)
	}
	return nil
}
