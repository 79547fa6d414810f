package repositories

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/config"
	"github.com/rohits-web03/fundbridge/internal/utils"
)

var ErrUnsupportedImage = errors.New("only .jpg, .jpeg, .png and .webp images are allowed")

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const imageUploadExpiry = 15 * time.Minute

// ImageUpload is what a client needs to push a project image straight to
// object storage and then reference it from the project form.
type ImageUpload struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ImageStore signs uploads to an R2 (S3 compatible) bucket.
type ImageStore struct {
	presigner     *s3.PresignClient
	bucket        string
	endpoint      string
	publicBaseURL string
}

// NewImageStore builds a client using static credentials and the account's
// R2 endpoint. It returns nil when cfg is incomplete.
func NewImageStore(cfg config.R2Config) *ImageStore {
	if !cfg.Enabled() {
		return nil
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &ImageStore{
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.BucketName,
		endpoint:      endpoint,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// PresignProjectImage returns a presigned PUT URL for a new image owned by ownerID.
func (s *ImageStore) PresignProjectImage(ctx context.Context, ownerID uuid.UUID, filename string) (*ImageUpload, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedImageExtensions[ext] {
		return nil, ErrUnsupportedImage
	}

	token, err := utils.RandomToken(16)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("projects/%s/%s%s", ownerID, token, ext)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(imageUploadExpiry))
	if err != nil {
		return nil, err
	}

	return &ImageUpload{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.publicURL(key),
		ExpiresAt: time.Now().Add(imageUploadExpiry),
	}, nil
}

func (s *ImageStore) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
}
