package artifact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/annakorobkova/inspira/internal/config"
)

// S3Uploader stores images in an S3-compatible bucket.
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	endpoint      string
	publicBaseURL string
}

// NewS3Uploader builds an S3 client from the artifact store settings.
// A non-empty Endpoint switches the client to path-style addressing
// for MinIO-like deployments.
func NewS3Uploader(ctx context.Context, cfg config.ArtifactStore) (*S3Uploader, error) {
	const op = "artifact.NewS3Uploader"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		endpoint:      cfg.Endpoint,
		publicBaseURL: cfg.PublicBaseURL,
	}, nil
}

// StorageKey returns a unique object key under the gallery folder.
func StorageKey() string {
	d := time.Now()
	return fmt.Sprintf("inspirations/%d/%02d/%v", d.Year(), d.Month(), uuid.New())
}

// Upload puts the blob into the bucket and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	const op = "artifact.Upload"

	key := StorageKey()
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return u.PublicURL(key), nil
}

// PublicURL resolves the browser-reachable URL of an object key.
func (u *S3Uploader) PublicURL(key string) string {
	if u.publicBaseURL != "" {
		return strings.TrimRight(u.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.endpoint, "/"), u.bucket, key)
}
