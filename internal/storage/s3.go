package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"locshare/internal/env"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// S3Service is a client for S3-compatible storage.
type S3Service struct {
	client *minio.Client
	count  atomic.Int64
}

// PutOptions controls how an object is written.
type PutOptions struct {
	// Overwrite replaces an existing object; otherwise the write is skipped.
	Overwrite bool
	// ContentType defaults to application/json.
	ContentType string
}

// Object is a single value to be written by StoreFromChannel.
type Object struct {
	Key   string
	Value any
}

// NewS3Service initializes and returns a new S3 storage service.
func NewS3Service(cfg env.MinioConfig) (*S3Service, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("missing one or more required settings: MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	log.Println("Successfully connected to MinIO endpoint:", cfg.Endpoint)
	return &S3Service{client: minioClient}, nil
}

func (s *S3Service) CreateBucket(ctx context.Context, bucketName string, location string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// StoreFromChannel writes every object received on objects to bucketName and
// returns how many were written. Existing objects are kept unless overwrite is set.
func (s *S3Service) StoreFromChannel(ctx context.Context, bucketName string, objects <-chan Object, overwrite bool) int64 {
	var wg sync.WaitGroup
	s.count.Store(0)

	for obj := range objects {
		wg.Add(1)
		go func(o Object) {
			defer wg.Done()
			written, err := s.PutJSON(ctx, bucketName, o.Key, o.Value, PutOptions{Overwrite: overwrite})
			if err != nil {
				log.Printf("Error storing object '%s': %v", o.Key, err)
				return
			}
			if written {
				s.count.Add(1)
			}
		}(obj)
	}

	wg.Wait()
	n := s.count.Load()
	log.Printf("Finished storing all objects from the channel. Count %d", n)
	return n
}

// PutJSON marshals v and stores it under objectKey. It reports whether the
// object was written; an existing object is left alone unless opts.Overwrite.
func (s *S3Service) PutJSON(ctx context.Context, bucketName, objectKey string, v any, opts PutOptions) (bool, error) {
	if !opts.Overwrite {
		_, err := s.client.StatObject(ctx, bucketName, objectKey, minio.StatObjectOptions{})
		if err == nil {
			log.Printf("Object '%s' already exists in bucket '%s'. Ignoring write operation.", objectKey, bucketName)
			return false, nil
		}
		if !isNotFound(err) {
			return false, fmt.Errorf("failed to check for existing object: %w", err)
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s to JSON: %w", objectKey, err)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	_, err = s.client.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return false, fmt.Errorf("failed to store object in S3: %w", err)
	}

	log.Printf("Successfully stored '%s' in bucket '%s'", objectKey, bucketName)
	return true, nil
}

// GetJSON decodes the object at objectKey into out. A missing object yields
// ErrNotFound.
func (s *S3Service) GetJSON(ctx context.Context, bucketName, objectKey string, out any) error {
	object, err := s.client.GetObject(ctx, bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer object.Close()

	// GetObject is lazy; a missing key only surfaces on the first read.
	if err := json.NewDecoder(object).Decode(out); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, bucketName, objectKey)
		}
		return fmt.Errorf("failed to decode JSON from stream: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchBucket"
}
