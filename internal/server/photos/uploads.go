package photos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// uploadURLValidity bounds how long a client can use a presigned PUT URL.
const uploadURLValidity = 15 * time.Minute

// Upload describes a presigned image upload: the client PUTs the image bytes
// to UploadURL, then submits ImageURL as the photo's image reference.
type Upload struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	ImageURL  string `json:"image_url"`
}

// randomStorageKey partitions uploads by date; the uuid makes keys unguessable.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("photos/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

func (s *Service) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// NewUploadURL mints a presigned PUT URL for a fresh storage key, along with
// the public URL the stored object will be reachable at.
func (s *Service) NewUploadURL(ctx context.Context) (*Upload, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(uploadURLValidity))
	if err != nil {
		return nil, err
	}

	return &Upload{
		Key:       key,
		UploadURL: req.URL,
		ImageURL:  strings.TrimSuffix(s.config.S3PublicBaseURL, "/") + "/" + key,
	}, nil
}
