// Package blob – S3 backend.
//
// URIs have the form "s3://<bucket>/<key>". The client is constructed from
// the ambient AWS config (env/credentials file/IMDS); a custom endpoint with
// path-style addressing supports MinIO-style local stacks.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3API is the subset of the S3 client used by S3Store, kept narrow so tests
// can stub it.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store stores blobs as objects in a single bucket under an "evidence/"
// key prefix.
type S3Store struct {
	client s3API
	bucket string
}

// NewS3Store loads the default AWS config and returns a store over bucket.
// A non-empty endpoint overrides the resolved one (local object stores).
func NewS3Store(ctx context.Context, bucket, region, endpoint string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	if region != "" {
		cfg.Region = region
	}
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: cfg.Credentials,
		HTTPClient:  cfg.HTTPClient,
	}
	if endpoint != "" {
		opts.BaseEndpoint = &endpoint
		opts.UsePathStyle = true
	}
	return &S3Store{client: s3.New(opts), bucket: bucket}, nil
}

// Put uploads the stream under a unique key and returns its s3:// URI.
func (s *S3Store) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	key := "evidence/" + uuid.NewString() + "_" + sanitizeName(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   r,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

// Remove deletes the object behind an "s3://" URI.
func (s *S3Store) Remove(ctx context.Context, uri string) error {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return fmt.Errorf("blob: not an s3 URI: %q", uri)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket != s.bucket || key == "" {
		return fmt.Errorf("blob: URI outside store: %q", uri)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}
