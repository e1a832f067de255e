package ports

import "context"

type S3Client interface {
	PresignDownloadURL(ctx context.Context, key string) (string, error)
	DeleteObjects(ctx context.Context, keys []string) error
}
