package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoService stores maintenance-request photos in object storage and
// hands out object keys; requests reference photos by key only.
type PhotoService interface {
	UploadPhoto(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
	PhotoURL(key string, expiry time.Duration) (string, error)
	EnsureBucketExists(ctx context.Context) error
}

type minioPhotoService struct {
	client *minio.Client
	bucket string
}

func NewPhotoService(endpoint, accessKey, secretKey, bucket string, useSSL bool) (PhotoService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioPhotoService{client: client, bucket: bucket}, nil
}

func (s *minioPhotoService) UploadPhoto(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	key := fmt.Sprintf("maintenance/%s", uuid.NewString())

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *minioPhotoService) PhotoURL(key string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(context.Background(), s.bucket, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (s *minioPhotoService) EnsureBucketExists(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !found {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}
