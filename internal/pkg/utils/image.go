package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png"}

// ValidateImage accepts a nil header so callers can treat the upload as
// optional; size limit is in megabytes.
func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return nil
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return errors.New("invalid file format")
}

func ImageExtension(fileHeader *multipart.FileHeader) string {
	return strings.ToLower(filepath.Ext(fileHeader.Filename))
}
