package config

import (
	"fmt"
	"os"
)

// S3Config enables publishing finished videos to S3. The publisher is
// optional: when neither variable is set, GetS3Config returns (nil, nil) and
// videos stay on local disk.
type S3Config struct {
	BucketName string
	Region     string
}

func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("VIDEO_BUCKET_NAME")
	region := os.Getenv("AWS_REGION")

	if bucketName == "" && region == "" {
		return nil, nil
	}
	if bucketName == "" {
		return nil, fmt.Errorf("VIDEO_BUCKET_NAME must be set when AWS_REGION is set")
	}
	if region == "" {
		return nil, fmt.Errorf("AWS_REGION must be set when VIDEO_BUCKET_NAME is set")
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
