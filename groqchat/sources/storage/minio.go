// groqchat/sources/storage/minio.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"groqchat/groqchat/config"
	"groqchat/groqchat/utils/apperrors"
	"io"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOClient struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

func NewMinIOClient(ctx context.Context, cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: cfg.MinIOBucket, now: time.Now}, nil
}

// TranscriptKey is "transcripts/{conversation_id}/{unix_seconds}.json".
func TranscriptKey(conversationID string, at time.Time) string {
	return path.Join("transcripts", conversationID, fmt.Sprintf("%d.json", at.Unix()))
}

func (m *MinIOClient) UploadTranscript(ctx context.Context, conversationID string, data []byte) (string, error) {
	key := TranscriptKey(conversationID, m.now())
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}
	return key, nil
}

// GetTranscript returns the stored object. A missing key is reported as ErrNotFound.
func (m *MinIOClient) GetTranscript(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, transcriptError(key, err)
	}
	defer obj.Close()
	// GetObject is lazy; a missing key only surfaces on the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, transcriptError(key, err)
	}
	return data, nil
}

func transcriptError(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: transcript %s", apperrors.ErrNotFound, key)
	}
	return fmt.Errorf("%w: get transcript %s: %w", apperrors.ErrStorage, key, err)
}
