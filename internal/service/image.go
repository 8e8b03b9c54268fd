package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platewise/backend/config"
)

// ImageService stores food images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadFoodImage uploads an image for a food and returns its public URL.
func (s *ImageService) UploadFoodImage(ctx context.Context, foodID uuid.UUID, body io.Reader, contentType string) (string, error) {
	if s.s3Config == nil || s.s3Config.Client == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	ext := extensionFor(contentType)
	key := fmt.Sprintf("foods/%s/%s%s", foodID, uuid.New(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("Uploaded food image %s", url)
	return url, nil
}

func extensionFor(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err == nil && len(exts) > 0 {
		// Prefer the conventional spelling for JPEGs.
		for _, e := range exts {
			if e == ".jpg" {
				return e
			}
		}
		return exts[0]
	}
	if strings.Contains(contentType, "png") {
		return ".png"
	}
	return ".jpg"
}
