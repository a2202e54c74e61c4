// Package mediastore persists report media (images, thumbnails, videos) in an
// S3-compatible bucket and hands out the public URLs stored on the reports.
package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"

	"github.com/jmk307/hellmap-api/internal/pkg/env"
)

// Config holds the bucket settings, read from the environment.
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	PublicBaseURL   string
}

// ConfigFromEnv reads the S3_* settings.
func ConfigFromEnv() *Config {
	return &Config{
		Region:          env.GetEnv("S3_REGION", "ap-northeast-2"),
		Bucket:          env.GetEnv("S3_BUCKET", ""),
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
	}
}

// IsEnabled reports whether the bucket is configured at all. With media
// storage disabled, report submissions still work, just without attachments.
func (c *Config) IsEnabled() bool {
	return c.Bucket != "" && c.AccessKeyID != ""
}

// Store wraps the S3 client with media-specific helpers.
type Store struct {
	s3Client *s3.Client
	config   *Config
}

// NewStore creates the media store and verifies the bucket is reachable.
func NewStore(cfg *Config) (*Store, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("media storage is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})

	store := &Store{s3Client: s3Client, config: cfg}

	if _, err := s3Client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	}); err != nil {
		return nil, fmt.Errorf("bucket %s not accessible: %w", cfg.Bucket, err)
	}

	log.Infof("[MediaStore] Successfully initialized S3 client for bucket: %s", cfg.Bucket)
	return store, nil
}

// Upload stores one media object and returns its public URL.
func (s *Store) Upload(ctx context.Context, objectKey string, data []byte, contentType string) (string, error) {
	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.Bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Infof("[MediaStore] Successfully uploaded: s3://%s/%s", s.config.Bucket, objectKey)
	return s.PublicURL(objectKey), nil
}

// Download fetches one media object into memory. Report media is capped at
// upload time, so buffering whole objects is fine.
func (s *Store) Download(ctx context.Context, objectKey string) ([]byte, error) {
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}

// Delete removes one media object. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, objectKey string) error {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}
	return nil
}

// PublicURL builds the client-facing URL of an object.
func (s *Store) PublicURL(objectKey string) string {
	if s.config.PublicBaseURL != "" {
		return strings.TrimRight(s.config.PublicBaseURL, "/") + "/" + objectKey
	}
	if s.config.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.config.EndpointURL, "/"), s.config.Bucket, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.Bucket, s.config.Region, objectKey)
}

// ObjectKeyFromURL recovers the object key of a URL this store produced.
// Foreign URLs yield an empty key, which callers treat as "nothing to delete".
func (s *Store) ObjectKeyFromURL(publicURL string) string {
	prefixes := []string{
		strings.TrimRight(s.config.PublicBaseURL, "/") + "/",
		fmt.Sprintf("%s/%s/", strings.TrimRight(s.config.EndpointURL, "/"), s.config.Bucket),
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.config.Bucket, s.config.Region),
	}
	for _, p := range prefixes {
		if p != "/" && strings.HasPrefix(publicURL, p) {
			return strings.TrimPrefix(publicURL, p)
		}
	}
	return ""
}
