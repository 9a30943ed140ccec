package app

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type ClientMinio interface {
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioS3Client stores images as <folder>/<publicID>.<ext> objects in one
// bucket.
type MinioS3Client struct {
	endpoint   string
	bucketName string
	folder     string
	client     ClientMinio
}

var imageAvailableFormats = []string{"png", "jpg", "jpeg", "gif", "webp", "tiff", "bmp", "svg"}

// NewMinioS3Client creates a new MinioS3Client instance.
func NewMinioS3Client(endpoint, accessKeyID, secretAccessKey, bucketName, folder string, useSSL bool) (*MinioS3Client, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for %s: %w", endpoint, err)
	}
	return &MinioS3Client{
		endpoint:   endpoint,
		bucketName: bucketName,
		folder:     folder,
		client:     minioClient,
	}, nil
}

// DeleteAsset removes every image object whose base name is publicID.
// Missing objects are not an error.
func (s3 *MinioS3Client) DeleteAsset(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("public id is required")
	}
	prefix := path.Join(s3.folder, publicID) + "."
	keys, err := s3.listKeys(ctx, prefix, imageAvailableFormats)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s3.client.RemoveObject(ctx, s3.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("can not remove %s/%s on %s: %w", s3.bucketName, key, s3.endpoint, err)
		}
		log.Printf("[assets] removed %s/%s on %s", s3.bucketName, key, s3.endpoint)
	}
	return nil
}

func (s3 *MinioS3Client) listKeys(ctx context.Context, prefix string, filters []string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make([]string, 0)
	objectCh := s3.client.ListObjects(ctx, s3.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	})
	for object := range objectCh {
		if object.Err != nil {
			return result, fmt.Errorf("can not list %s/%s on %s: %w", s3.bucketName, prefix, s3.endpoint, object.Err)
		}
		if len(filters) > 0 && !checkIn(object.Key, filters) {
			continue
		}
		// A prefix of "abc." also matches "abc.def.png", which belongs
		// to the asset "abc.def".
		if strings.Count(strings.TrimPrefix(object.Key, prefix), ".") > 0 {
			continue
		}
		result = append(result, object.Key)
	}
	return result, nil
}

func checkIn(key string, filters []string) bool {
	parsed := strings.Split(key, ".")
	if len(parsed) > 1 {
		ext := strings.ToLower(parsed[len(parsed)-1])
		for _, f := range filters {
			if f == ext {
				return true
			}
		}
	}
	return false
}
