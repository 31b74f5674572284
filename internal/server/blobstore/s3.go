// Package blobstore keeps uploaded files (barangay clearances) in an
// S3-compatible bucket such as MinIO.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/config"
)

type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// objectAPI is the subset of *s3.Client the store calls.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type S3Store struct {
	bucket string
	api    objectAPI
}

// NewS3Store builds a client from static credentials and the configured
// endpoint. Path-style addressing is forced so MinIO works without DNS.
func NewS3Store(ctx context.Context, cfg *sc.Config) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Store{bucket: cfg.S3Bucket, api: client}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := s.api.PutObject(ctx, in); err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// NewClearanceKey returns a unique object key for a clearance uploaded at t,
// keeping the lower-cased extension of filename.
func NewClearanceKey(filename string, t time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("clearances/%d/%d/%d/%v%s", t.Year(), t.Month(), t.Day(), uuid.New(), ext)
}
