package artifacts

import (
	"bytes"
	"context"
	"mailtime-service/internal/app/contracts"
	"mailtime-service/internal/pkg/constvars"
	"mailtime-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ArtifactStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioStorage) UploadJSON(ctx context.Context, objectName string, payload []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioStorage.UploadJSON stored artifact",
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return nil
}
