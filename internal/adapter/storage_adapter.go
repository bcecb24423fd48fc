package adapter

import (
	"CivicReportAPI/internal/config"
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StorageAdapter is the media-storage collaborator. The rest of the system
// only ever sees the opaque reference strings it hands back.
type StorageAdapter struct {
	client *s3.Client
	bucket string
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		client: s3Client,
		bucket: cfg.S3Bucket,
	}
}

func (s *StorageAdapter) StoreFromReader(reader io.Reader, contentType string, path string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	s3Key := filepath.ToSlash(path)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3Key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *StorageAdapter) Delete(path string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	s3Key := filepath.ToSlash(path)
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3Key),
	})
	return err
}
