package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/vitatrack/backend/config"
	"github.com/vitatrack/backend/internal/apperror"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ImageService stores user avatars in S3.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadAvatar writes the image to S3 under a fresh uuid key and
// returns its public URL.
func (s *ImageService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", apperror.Validation("avatar must be a JPEG, PNG or WebP image")
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", userID, uuid.New(), ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperror.Upstream("avatar upload failed", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, key), nil
}
