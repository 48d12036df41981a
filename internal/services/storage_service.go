package services

import (
	"context"
	"fmt"
	"log"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/endfield/backend/internal/config"
	"github.com/google/uuid"
)

// StorageService brokers access to the S3-compatible object store. Binaries
// never transit this process: clients upload and download directly against
// presigned URLs, the service only signs them and deletes objects.
type StorageService struct {
	client    *s3.Client
	presigner *s3.PresignClient
	cfg       *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	client, err := buildClient(cfg)
	if err != nil {
		return nil, err
	}
	return &StorageService{
		client:    client,
		presigner: s3.NewPresignClient(client),
		cfg:       cfg,
	}, nil
}

func buildClient(cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")),
		awsconfig.WithLogger(logging.NewStandardLogger(os.Stderr)),
	)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	return client, nil
}

// UploadCredentials is everything a client needs to push one object
type UploadCredentials struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	PublicURL string `json:"public_url"`
}

// GenerateUploadURL issues a presigned PUT scoped to a fresh collision-free
// key under uploads/. The public URL is a best-effort concatenation; it is
// only reachable if the bucket allows public reads.
func (s *StorageService) GenerateUploadURL(ctx context.Context, filename, contentType string) (*UploadCredentials, error) {
	key := fmt.Sprintf("uploads/%s-%s", uuid.New().String(), filename)

	out, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		log.Printf("Storage error: presign upload for %q: %v", key, err)
		return nil, err
	}

	return &UploadCredentials{
		UploadURL: out.URL,
		FileKey:   key,
		PublicURL: fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.S3Endpoint, "/"), s.cfg.S3Bucket, key),
	}, nil
}

// GenerateDownloadURL issues a presigned GET for an existing storage key.
// Text-like objects get an explicit UTF-8 charset so non-ASCII content does
// not render garbled, and the response is always forced to attachment
// disposition, carrying the original filename when one is known.
func (s *StorageService) GenerateDownloadURL(ctx context.Context, key, originalFilename string, expires time.Duration) (string, error) {
	in := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	}

	if ct := responseContentType(key); ct != "" {
		in.ResponseContentType = aws.String(ct)
	}

	disposition := "attachment"
	if originalFilename != "" {
		disposition = fmt.Sprintf("attachment; filename*=UTF-8''%s", encodeRFC5987(originalFilename))
	}
	in.ResponseContentDisposition = aws.String(disposition)

	out, err := s.presigner.PresignGetObject(ctx, in, s3.WithPresignExpires(expires))
	if err != nil {
		log.Printf("Storage error: presign download for %q: %v", key, err)
		return "", err
	}
	return out.URL, nil
}

// DeleteObject removes the backing object. Best effort: the caller decides
// whether a false return aborts the surrounding transaction.
func (s *StorageService) DeleteObject(ctx context.Context, key string) bool {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("Storage error: delete %q: %v", key, err)
		return false
	}
	return true
}

// responseContentType guesses a content type from the key's extension and
// pins the charset to UTF-8 for textual and JSON content
func responseContentType(key string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(key)))
	if ct == "" {
		return ""
	}
	textual := strings.HasPrefix(ct, "text/") || strings.HasPrefix(ct, "application/json")
	if textual && !strings.Contains(ct, "charset") {
		ct += "; charset=utf-8"
	}
	return ct
}

// encodeRFC5987 percent-encodes a filename for the filename* parameter of
// Content-Disposition (RFC 5987 ext-value, UTF-8)
func encodeRFC5987(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
