package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage stores blobs in an S3-compatible bucket. Objects are written
// under public-read semantics so the returned URLs stay valid for as long
// as the object exists.
type S3Storage struct {
	client   *s3.Client
	bucket   string
	endpoint string
	region   string
}

type S3Options struct {
	Endpoint string // host only, e.g. "fsn1.your-objectstorage.com"; empty for AWS
	Region   string
	Bucket   string
	KeyID    string
	Secret   string
}

func NewS3Storage(opts S3Options) (*S3Storage, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 storage requires a bucket")
	}

	s3Opts := s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.KeyID, opts.Secret, "",
		),
	}
	if opts.Endpoint != "" {
		// Non-AWS providers require path-style URLs.
		s3Opts.BaseEndpoint = aws.String(fmt.Sprintf("https://%s", opts.Endpoint))
		s3Opts.UsePathStyle = true
	}

	return &S3Storage{
		client:   s3.New(s3Opts),
		bucket:   opts.Bucket,
		endpoint: opts.Endpoint,
		region:   opts.Region,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error) {
	cleanKey := path.Clean(strings.TrimPrefix(key, "/"))
	if strings.HasPrefix(cleanKey, "..") {
		return "", fmt.Errorf("invalid object key: %s", key)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(cleanKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", cleanKey, err)
	}

	return cleanKey, nil
}

func (s *S3Storage) GetURL(ctx context.Context, key string) (string, error) {
	cleanKey := path.Clean(strings.TrimPrefix(key, "/"))
	if s.endpoint != "" {
		return fmt.Sprintf("https://%s/%s/%s", s.endpoint, s.bucket, cleanKey), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, cleanKey), nil
}
