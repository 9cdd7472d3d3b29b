package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadBase64Image(ctx context.Context, encodedImageData []byte, fileName, fileExtension string) (string, error)
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	RemoveObject(ctx context.Context, objectName string) error
}
