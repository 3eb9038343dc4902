// Package storage persists avatar images in an S3-compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds the object store connection settings. Endpoint may point at
// any S3-compatible service (AWS, R2, MinIO).
type Config struct {
	Endpoint      string
	Region        string
	AccessKeyID   string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// AvatarStore uploads watermarked avatars and returns their public URLs.
type AvatarStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewAvatarStore(cfg Config) *AvatarStore {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &AvatarStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Put stores a JPEG-encoded avatar under a fresh UUID key and returns the
// public URL to reference from a client profile.
func (s *AvatarStore) Put(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("avatars/%s.jpg", uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("put avatar: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}
