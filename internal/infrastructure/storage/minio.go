package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// RecordingArchive stores uploaded interview recordings in MinIO. Archival is
// optional and best-effort; the analysis pipeline never depends on it.
type RecordingArchive struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewRecordingArchive creates a MinIO-backed archive and ensures the bucket
// exists
func NewRecordingArchive(cfg *config.StorageConfig) (*RecordingArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &RecordingArchive{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
	}

	ctx := context.Background()
	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

// ensureBucket creates the archive bucket when it does not exist yet
func (a *RecordingArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// ArchiveRecording uploads the recording file under the given object name and
// returns the object key
func (a *RecordingArchive) ArchiveRecording(ctx context.Context, objectName, filePath string) (string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := a.client.FPutObject(ctx, a.bucket, objectName, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload recording: %w", err)
	}

	return objectName, nil
}

// ObjectURL returns a stable URL for an archived object when a public base
// URL is configured, empty otherwise
func (a *RecordingArchive) ObjectURL(objectName string) string {
	if a.publicURL == "" {
		return ""
	}
	return strings.TrimSuffix(a.publicURL, "/") + "/" + a.bucket + "/" + objectName
}
