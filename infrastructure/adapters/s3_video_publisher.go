package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/config"
)

type s3VideoPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

// NewS3VideoPublisher uploads finished broadcast videos to S3. The local
// artifact is kept; the janitor owns its eventual removal.
func NewS3VideoPublisher(logger outbound.LoggerPort, s3Config *config.S3Config) (outbound.VideoPublisherPort, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &s3VideoPublisher{
		logger:   logger,
		s3Svc:    s3.New(sess),
		s3Config: s3Config,
	}, nil
}

func (s *s3VideoPublisher) Publish(ctx context.Context, req outbound.PublishVideoRequest) (string, error) {
	file, err := os.Open(req.LocalPath)
	if err != nil {
		return "", fmt.Errorf("open video file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "Failed to close video file")
		}
	}()

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(req.Key),
		Body:        file,
		ContentType: aws.String("video/mp4"),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		return "", fmt.Errorf("upload video to s3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, req.Key)
	s.logger.InfoWithFields("Video published to S3", map[string]interface{}{"url": url})
	return url, nil
}
