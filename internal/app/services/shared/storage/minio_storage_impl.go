package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	BucketName    string
	PublicBaseUrl string
}

func NewMinioStorage(minioClient *minio.Client, internalConfig *config.InternalConfig) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		BucketName:    internalConfig.Minio.BucketName,
		PublicBaseUrl: strings.TrimRight(internalConfig.Minio.PublicBaseUrl, "/"),
	}
}

// UploadFile stores the object under objectName and returns the public
// URL served by the bucket's anonymous read policy.
func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return fmt.Sprintf("%s/%s/%s", m.PublicBaseUrl, m.BucketName, objectName), nil
}
