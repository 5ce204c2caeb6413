// Package minio stores question images in an S3-compatible bucket and hands
// back public reference URLs. Only the URL is persisted with a question.
package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/qreview-backend/internal/config"
)

// ErrForeignURL is returned by Remove for URLs this store did not issue.
var ErrForeignURL = errors.New("url does not belong to asset store")

// Store is a MinIO-backed asset store.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
	log     *slog.Logger
}

// New connects to MinIO and makes sure the bucket exists.
func New(ctx context.Context, cfg config.AssetsConfig, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio: check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio: create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBase(cfg),
		log:     logger.With("adapter", "minio"),
	}, nil
}

// Upload stores r under a generated key and returns its reference URL.
func (s *Store) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	key := objectKey(filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio: put %s: %w", key, err)
	}

	s.log.DebugContext(ctx, "asset uploaded", slog.String("key", key), slog.Int64("size", size))
	return s.baseURL + "/" + key, nil
}

// Remove deletes the object behind a reference URL issued by Upload.
func (s *Store) Remove(ctx context.Context, rawURL string) error {
	key, ok := keyFromURL(s.baseURL, rawURL)
	if !ok {
		return fmt.Errorf("minio: %w: %s", ErrForeignURL, rawURL)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: remove %s: %w", key, err)
	}
	return nil
}

// Ping checks bucket reachability.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}

func publicBase(cfg config.AssetsConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
}

// objectKey namespaces uploads under a random prefix and keeps a sanitised
// extension so browsers can guess the media type.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	if len(ext) > 10 || strings.ContainsAny(ext, " ?#%") {
		ext = ""
	}
	return "questions/" + uuid.NewString() + ext
}

func keyFromURL(base, rawURL string) (string, bool) {
	if !strings.HasPrefix(rawURL, base+"/") {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, base+"/")
	if key == "" {
		return "", false
	}
	if u, err := url.PathUnescape(key); err == nil {
		key = u
	}
	if strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
