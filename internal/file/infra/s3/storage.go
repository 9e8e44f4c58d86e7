package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/klwxsrx/media-service/internal/file/app/storage"
)

type (
	Config struct {
		Endpoint  string
		Region    string
		Bucket    string
		AccessKey string
		SecretKey string
		// PublicURL prefixes object keys in returned URLs. Defaults to Endpoint/Bucket.
		PublicURL string
	}

	ObjectAPI interface {
		PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(context.Context, *s3.DeleteObjectInput, ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	objectStorage struct {
		client    ObjectAPI
		bucket    string
		publicURL string
	}
)

func NewObjectStorage(ctx context.Context, cfg Config) (storage.ObjectStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is not set")
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewObjectStorageWithClient(client, cfg)
}

func NewObjectStorageWithClient(client ObjectAPI, cfg Config) (storage.ObjectStorage, error) {
	publicURL := cfg.PublicURL
	if publicURL == "" {
		if cfg.Endpoint == "" {
			return nil, errors.New("neither public url nor endpoint is set")
		}
		publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &objectStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *objectStorage) Put(ctx context.Context, obj storage.Object) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(obj.Key),
		Body:        obj.Body,
		ContentType: aws.String(obj.ContentType),
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", obj.Key, err)
	}

	return s.publicURL + "/" + escapeKey(obj.Key), nil
}

func (s *objectStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return strings.Join(parts, "/")
}
