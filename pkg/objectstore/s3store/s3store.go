// Package s3store implements objectstore.Store on Amazon S3 or any S3
// compatible service.
package s3store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"travel/pkg/objectstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the subset of the S3 client used by the store.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context,
		in *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Options struct {
	Bucket string
	Region string
	// Endpoint overrides the S3 endpoint, e.g. for MinIO or R2. Path style
	// addressing is used when set.
	Endpoint string
	// CDNBaseURL prefixes object keys to build public URLs.
	CDNBaseURL string
	// AccessKeyID and SecretAccessKey are optional static credentials; the
	// default credential chain is used otherwise.
	AccessKeyID     string
	SecretAccessKey string
}

type Store struct {
	api  API
	opts Options
}

var _ objectstore.Store = (*Store)(nil)

// New builds a store from the default AWS configuration. Without a bucket or
// CDN base URL every call fails with objectstore.ErrNotConfigured.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" || opts.CDNBaseURL == "" {
		return &Store{opts: opts}, nil
	}

	loaders := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithAPI(client, opts), nil
}

// NewWithAPI builds a store on an existing client.
func NewWithAPI(api API, opts Options) *Store {
	return &Store{api: api, opts: opts}
}

func (s *Store) configured() bool {
	return s.api != nil && s.opts.Bucket != "" && s.opts.CDNBaseURL != ""
}

func (s *Store) Upload(ctx context.Context,
	folder, name, contentType string,
	body io.Reader,
	size int64) (*objectstore.Object, error) {
	if !s.configured() {
		return nil, objectstore.ErrNotConfigured
	}

	key := objectstore.Key(folder, contentType)
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
		Metadata:      map[string]string{"original-name": url.PathEscape(name)},
	})
	if err != nil {
		return nil, fmt.Errorf("could not put object %q: %w", key, err)
	}

	return &objectstore.Object{
		Key:         key,
		URL:         objectstore.URL(s.opts.CDNBaseURL, key),
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if !s.configured() {
		return objectstore.ErrNotConfigured
	}

	if _, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("could not delete object %q: %w", key, err)
	}

	return nil
}
