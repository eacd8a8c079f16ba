package minio

import (
	"fmt"
	"log/slog"

	"bucket_images/config"
	"bucket_images/images"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Minio talks to any S3-compatible store, including Cloud Storage through
// its interoperability endpoint.
type Minio struct {
	client *minio.Client
}

func Init(cfg config.StorageConfig) (*Minio, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewFileAWSCredentials(cfg.CredentialsFile, cfg.CredentialsProfile),
		Region: cfg.Location,
		Secure: cfg.UseSSL,
	})
	if err != nil {
		slog.Error("failed to create storage client", "endpoint", cfg.Endpoint, "error", err)
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	slog.Debug("storage client created", "endpoint", cfg.Endpoint)
	return &Minio{
		client: minioClient,
	}, nil
}

func (m *Minio) Bucket(name string) images.Bucket {
	return &Bucket{client: m.client, name: name}
}
