package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"

	"locshare/internal/env"
)

func TestNewS3Service_MissingSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  env.MinioConfig
	}{
		{name: "no endpoint", cfg: env.MinioConfig{AccessKey: "a", SecretKey: "s"}},
		{name: "no access key", cfg: env.MinioConfig{Endpoint: "localhost:9000", SecretKey: "s"}},
		{name: "no secret key", cfg: env.MinioConfig{Endpoint: "localhost:9000", AccessKey: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewS3Service(tt.cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewS3Service(t *testing.T) {
	svc, err := NewS3Service(env.MinioConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"})
	if err != nil {
		t.Fatalf("NewS3Service() error = %v", err)
	}
	if svc.client == nil {
		t.Fatal("client not initialized")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "no such key", err: minio.ErrorResponse{Code: "NoSuchKey"}, want: true},
		{name: "no such bucket", err: minio.ErrorResponse{Code: "NoSuchBucket"}, want: true},
		{name: "access denied", err: minio.ErrorResponse{Code: "AccessDenied"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNotFound(tt.err); got != tt.want {
				t.Errorf("isNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
