package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

type Storage interface {
	// UploadFile stores a multipart upload and returns the public URL of
	// the created object.
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, error)
}
