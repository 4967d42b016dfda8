package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by Uploader.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes certification documents to an S3 bucket.
type Uploader struct {
	bucket string
	client S3API
}

func NewUploader(client S3API, bucket string) *Uploader {
	return &Uploader{bucket: bucket, client: client}
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.bucket != "" && u.client != nil
}

// Put stores an object under key and returns the key back.
func (u *Uploader) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if !u.Enabled() {
		return "", fmt.Errorf("storage: uploader not configured")
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 put %s: %w", key, err)
	}

	return key, nil
}
