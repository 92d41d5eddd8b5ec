package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/wkdev/pacelular-backend/internal/config"
	"go.uber.org/zap"
)

// service turns an uploaded image into the opaque string payload the catalog
// and carousel embed. With an object store configured it returns a public
// URL; otherwise it inlines the bytes as a data URI so the catalog stays
// self-contained.
type service struct {
	minioClient *minio.Client
	cfg         config.Minio
	logger      *zap.Logger
}

func New(minioClient *minio.Client, cfg config.Minio, logger *zap.Logger) *service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *service) Ingest(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	if s.minioClient == nil {
		return s.inline(reader, contentType)
	}

	return s.store(ctx, reader, size, contentType)
}

func (s *service) inline(reader io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		s.logger.Error("error reading uploaded file", zap.Error(err))
		return "", err
	}

	return fmt.Sprintf(
		"data:%s;base64,%s",
		contentType,
		base64.StdEncoding.EncodeToString(data),
	), nil
}

func (s *service) store(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	bucketName := s.cfg.Bucket

	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		s.logger.Error("error checking if bucket exists", zap.Error(err))
		return "", err
	}

	if !exists {
		if err = s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			s.logger.Error("error creating bucket", zap.Error(err))
			return "", err
		}
	}

	objectName := uuid.NewString()

	ui, err := s.minioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		s.logger.Error("error uploading object", zap.Error(err))
		return "", err
	}

	s.logger.Info("uploaded object",
		zap.String("bucket", ui.Bucket),
		zap.String("key", ui.Key),
		zap.Int64("size", ui.Size),
	)

	return fmt.Sprintf("%s/%s/%s", s.cfg.PublicURL, bucketName, objectName), nil
}
