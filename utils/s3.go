package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader stores profile pictures and returns their public URL.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Uploader(ctx context.Context, region, bucket, cloudFrontURL string) (*S3Uploader, error) {
	if bucket == "" {
		return nil, errors.New("S3_BUCKET not set")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	base := strings.TrimRight(cloudFrontURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Uploader{client: s3.NewFromConfig(cfg), bucket: bucket, baseURL: base}, nil
}

// DecodeDataURL splits "data:<mime>;base64,<data>" into content type, extension and bytes.
func DecodeDataURL(dataURL string) (contentType, ext string, data []byte, err error) {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return "", "", nil, errors.New("invalid base64 image")
	}
	contentType = strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		return "", "", nil, fmt.Errorf("unsupported image type %q", contentType)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return contentType, ext, data, nil
}

func (u *S3Uploader) UploadProfilePicture(ctx context.Context, uid, dataURL string) (string, error) {
	contentType, ext, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("profile-pictures/%s-%d%s", uid, time.Now().UnixNano(), ext)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}
