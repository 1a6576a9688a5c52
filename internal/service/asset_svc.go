package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/config"
)

// Asset is a stored object reference. Entities persist the id (for later
// deletion) and the url (for clients).
type Asset struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// FileUpload is an incoming multipart file as handed over by a handler.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// AssetService stores media objects in MinIO. The rest of the system only
// ever sees {id, url} references, never raw bytes.
type AssetService struct {
	client *minio.Client
	bucket string
	scheme string
}

func NewAssetService(cfg *config.Config) (*AssetService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	scheme := "http"
	if cfg.MinioUseSSL {
		scheme = "https"
	}
	return &AssetService{client: client, bucket: cfg.MinioBucket, scheme: scheme}, nil
}

// EnsureBucket creates the bucket if it does not exist. Called once at
// startup.
func (s *AssetService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

var contentTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// Upload stores an object under the given category prefix and returns its
// reference. Unknown content types are rejected as invalid input.
func (s *AssetService) Upload(ctx context.Context, category string, r io.Reader, size int64, contentType string) (*Asset, error) {
	suffix, ok := contentTypeSuffix[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q: %w", contentType, apperr.ErrInvalidInput)
	}

	objectName := category + "/" + uuid.NewString() + suffix
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", apperr.ErrUpstream)
	}

	return &Asset{
		ID:  objectName,
		URL: fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.client.EndpointURL().Host, s.bucket, objectName),
	}, nil
}

// Delete removes a stored object by its asset id.
func (s *AssetService) Delete(ctx context.Context, assetID string) error {
	if assetID == "" {
		return nil
	}
	err := s.client.RemoveObject(ctx, s.bucket, assetID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove object %s: %w", assetID, apperr.ErrUpstream)
	}
	return nil
}
